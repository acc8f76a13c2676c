package transform

import (
	"context"
	"math"

	"github.com/cloudwego/eino/components/embedding"

	"szerzodes-gpt/logger"
)

// CleanEmbedder 包装原始 embedder，处理 NaN/Inf 值
type CleanEmbedder struct {
	inner embedding.Embedder
	log   *logger.Logger
}

func NewCleanEmbedder(inner embedding.Embedder, log *logger.Logger) *CleanEmbedder {
	return &CleanEmbedder{inner: inner, log: log}
}

// EmbedStrings NaN/Inf 会让余弦相似度失效，统一置 0
func (e *CleanEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	vectors, err := e.inner.EmbedStrings(ctx, texts, opts...)
	if err != nil {
		return nil, err
	}

	cleaned := 0
	for _, vec := range vectors {
		for j, val := range vec {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				vec[j] = 0.0
				cleaned++
			}
		}
	}
	if cleaned > 0 {
		e.log.Warn("[Embedder] NaN/Inf values replaced", "count", cleaned)
	}
	return vectors, nil
}
