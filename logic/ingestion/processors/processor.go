package processors

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Processor 清洗文档：去掉 NUL 字节和非法 UTF-8，丢弃空白文档
func Processor(ctx context.Context, src []*schema.Document) ([]*schema.Document, error) {
	cleanDocs := make([]*schema.Document, 0, len(src))
	for _, doc := range src {
		if doc == nil {
			continue
		}
		content := CleanText(doc.Content)
		if content == "" {
			continue
		}
		doc.Content = content
		cleanDocs = append(cleanDocs, doc)
	}
	return cleanDocs, nil
}

// CleanText PDF 解析常见的 NUL 字节、非法字符以及 Windows 换行
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
