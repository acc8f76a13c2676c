package loaders

import (
	"context"

	"github.com/cloudwego/eino-ext/components/document/loader/file"
	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/components/document/parser"
	"github.com/cloudwego/eino/schema"

	"szerzodes-gpt/logic/ingestion/processors"
	"szerzodes-gpt/logic/ingestion/transform"
)

// LoadSeed 读取 RAG 种子文件（.txt/.md 或 .pdf），按 "---" 切分为法律条文片段
func LoadSeed(ctx context.Context, path string) ([]*schema.Document, error) {
	pdfParser, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, err
	}
	extParser, err := parser.NewExtParser(ctx, &parser.ExtParserConfig{
		Parsers:        map[string]parser.Parser{".pdf": pdfParser},
		FallbackParser: parser.TextParser{},
	})
	if err != nil {
		return nil, err
	}
	loader, err := file.NewFileLoader(ctx, &file.FileLoaderConfig{
		UseNameAsID: true,
		Parser:      extParser,
	})
	if err != nil {
		return nil, err
	}

	docs, err := loader.Load(ctx, document.Source{URI: path})
	if err != nil {
		return nil, err
	}
	docs, err = processors.Processor(ctx, docs)
	if err != nil {
		return nil, err
	}
	return transform.NewSectionSplitter().Transform(ctx, docs)
}
