package parser

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"
	"github.com/cloudwego/eino/schema"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logic/ingestion/processors"
)

// Extensions 支持的上传类型
var Extensions = []string{".pdf", ".docx", ".txt", ".doc"}

// Extract 按扩展名把上传文件转成纯文本，结果为空时返回 ErrValidation
func Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var docs []*schema.Document
	var err error
	switch ext {
	case ".pdf":
		docs, err = parsePDF(ctx, filename, r)
	case ".docx":
		docs, err = parseDocx(filename, r)
	case ".txt", ".doc":
		docs, err = parsePlain(filename, r)
	default:
		return "", errs.Validation("unsupported file type %q, allowed: %s", ext, strings.Join(Extensions, ", "))
	}
	if err != nil {
		return "", err
	}

	docs, err = processors.Processor(ctx, docs)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.Content)
	}
	text := strings.TrimSpace(strings.Join(parts, "\n\n"))
	if text == "" {
		return "", errs.Validation("no text could be extracted from %s", filename)
	}
	return text, nil
}

func parsePDF(ctx context.Context, filename string, r io.Reader) ([]*schema.Document, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, err
	}
	docs, err := p.Parse(ctx, r, parser.WithURI(filename))
	if err != nil {
		return nil, errs.Validation("parse pdf failed: %v", err)
	}
	return docs, nil
}

// .doc 不做二进制解析，按文本读取并丢弃非法字节
func parsePlain(filename string, r io.Reader) ([]*schema.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return []*schema.Document{{ID: filename, Content: string(bytes.ToValidUTF8(raw, nil))}}, nil
}
