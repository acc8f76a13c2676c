// Package templates 按 (合同类型, 模式) 读取 HTML 模板
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/types"
)

//go:embed contracts/*.html
var embedded embed.FS

var contractTypeRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

type Store interface {
	Load(contractType string, mode types.Mode) (string, error)
}

// FSStore 每次调用都重新读取，修改模板无需重启
type FSStore struct {
	fsys fs.FS
}

// NewStore dir 为空时使用内置模板
func NewStore(dir string) *FSStore {
	if dir == "" {
		sub, _ := fs.Sub(embedded, "contracts")
		return &FSStore{fsys: sub}
	}
	return &FSStore{fsys: os.DirFS(dir)}
}

func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// FileName 模板文件名 {contract_type}_{mode}.html
func FileName(contractType string, mode types.Mode) string {
	return fmt.Sprintf("%s_%s.html", contractType, mode)
}

func (s *FSStore) Load(contractType string, mode types.Mode) (string, error) {
	if !contractTypeRe.MatchString(contractType) {
		return "", errs.Validation("invalid contract type %q", contractType)
	}
	name := FileName(contractType, mode)
	raw, err := fs.ReadFile(s.fsys, path.Clean(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", errs.NotFound("template %s", name)
	}
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return string(raw), nil
}
