package service

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/embedding"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/ingestion/loaders"
	"szerzodes-gpt/logic/ingestion/transform"
	"szerzodes-gpt/logic/rag"
	"szerzodes-gpt/storage/postgres"
	"szerzodes-gpt/types"
)

const (
	ragDefaultTopK = 5
	embedBatchSize = 16
)

type RAGService struct {
	repo     *postgres.RAGRepo
	embedder embedding.Embedder
	log      *logger.Logger
}

func NewRAGService(repo *postgres.RAGRepo, embedder embedding.Embedder, log *logger.Logger) *RAGService {
	return &RAGService{repo: repo, embedder: embedder, log: log.With("component", "RAG")}
}

// Search 对 rag_chunks 全表做余弦相似度排序
func (s *RAGService) Search(ctx context.Context, query string, topK int) ([]types.LegalContext, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation("query is required")
	}
	if topK <= 0 {
		topK = ragDefaultTopK
	}

	vecs, err := s.embedder.EmbedStrings(ctx, []string{query})
	if err != nil {
		return nil, errs.External("embed query", err)
	}
	if len(vecs) == 0 {
		return []types.LegalContext{}, nil
	}

	stored, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	chunks := make([]rag.Chunk, 0, len(stored))
	for _, c := range stored {
		chunks = append(chunks, rag.Chunk{Source: c.Source, Content: c.Content, Embedding: c.Embedding})
	}

	top := rag.TopK(vecs[0], chunks, topK)
	out := make([]types.LegalContext, 0, len(top))
	for _, t := range top {
		out = append(out, types.LegalContext{Source: t.Source, Content: t.Content, Score: t.Score})
	}
	return out, nil
}

// Seed 读取种子文件、计算向量并整体替换 rag_chunks
func (s *RAGService) Seed(ctx context.Context, path string) (int, error) {
	docs, err := loaders.LoadSeed(ctx, path)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, errs.Validation("seed file %s has no sections", path)
	}

	chunks := make([]postgres.StoredChunk, 0, len(docs))
	for start := 0; start < len(docs); start += embedBatchSize {
		end := min(start+embedBatchSize, len(docs))
		texts := make([]string, 0, end-start)
		for _, d := range docs[start:end] {
			texts = append(texts, d.Content)
		}
		vecs, err := s.embedder.EmbedStrings(ctx, texts)
		if err != nil {
			return 0, errs.External("embed seed", err)
		}
		for i, d := range docs[start:end] {
			var vec []float64
			if i < len(vecs) {
				vec = vecs[i]
			}
			source, _ := d.MetaData[transform.MetaKeySource].(string)
			chunks = append(chunks, postgres.StoredChunk{Source: source, Content: d.Content, Embedding: vec})
		}
	}

	if err := s.repo.ReplaceAll(ctx, chunks); err != nil {
		return 0, err
	}
	s.log.Info("[RAG] seeded", "path", path, "chunks", len(chunks))
	return len(chunks), nil
}
