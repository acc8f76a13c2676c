package transform

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/embedding/ollama"
	"github.com/cloudwego/eino/components/embedding"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
)

// NewEmbedder 创建 ollama embedder，并包上 NaN 清理
func NewEmbedder(ctx context.Context, baseURL, modelName string, timeout time.Duration, log *logger.Logger) (embedding.Embedder, error) {
	inner, err := ollama.NewEmbedder(ctx, &ollama.EmbeddingConfig{
		BaseURL: baseURL,
		Model:   modelName,
		Timeout: timeout,
	})
	if err != nil {
		return nil, errs.External("new embedder", err)
	}
	return NewCleanEmbedder(inner, log), nil
}
