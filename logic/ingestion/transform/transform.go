package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/schema"
)

// MetaKeySource 片段来源（如 "Ptk. 6:272. §"）
const MetaKeySource = "source"

// SectionSplitter 种子文件已经人工分好段，按单独一行的 "---" 切分即可
type SectionSplitter struct{}

var _ document.Transformer = (*SectionSplitter)(nil)

func NewSectionSplitter() *SectionSplitter {
	return &SectionSplitter{}
}

// Transform 以 "# " 开头的首行作为来源标题，否则使用文件名加序号
func (s *SectionSplitter) Transform(ctx context.Context, src []*schema.Document, opts ...document.TransformerOption) ([]*schema.Document, error) {
	var out []*schema.Document
	for _, doc := range src {
		sections := splitSections(doc.Content)
		for i, sec := range sections {
			source := fmt.Sprintf("%s#%d", doc.ID, i+1)
			body := sec
			if first, rest, _ := strings.Cut(sec, "\n"); strings.HasPrefix(first, "# ") {
				source = strings.TrimSpace(strings.TrimPrefix(first, "# "))
				body = strings.TrimSpace(rest)
			}
			if body == "" {
				continue
			}
			out = append(out, &schema.Document{
				ID:       source,
				Content:  body,
				MetaData: map[string]any{MetaKeySource: source},
			})
		}
	}
	return out, nil
}

func (s *SectionSplitter) GetType() string {
	return "SectionSplitter"
}

func splitSections(text string) []string {
	var sections []string
	var cur []string
	flush := func() {
		if sec := strings.TrimSpace(strings.Join(cur, "\n")); sec != "" {
			sections = append(sections, sec)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return sections
}
