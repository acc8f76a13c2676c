package postgres

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// StoredChunk 解码后的 RAG 片段
type StoredChunk struct {
	ID        uint
	Source    string
	Content   string
	Embedding []float64
}

type RAGRepo struct {
	db *gorm.DB
}

func NewRAGRepo(db *gorm.DB) *RAGRepo {
	return &RAGRepo{db: db}
}

// All 全量读取，表规模很小，线性扫描即可
func (r *RAGRepo) All(ctx context.Context) ([]StoredChunk, error) {
	var rows []RAGChunk
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]StoredChunk, 0, len(rows))
	for _, row := range rows {
		var emb []float64
		if len(row.Embedding) > 0 {
			if err := json.Unmarshal(row.Embedding, &emb); err != nil {
				return nil, err
			}
		}
		out = append(out, StoredChunk{ID: row.ID, Source: row.Source, Content: row.Content, Embedding: emb})
	}
	return out, nil
}

// ReplaceAll 在一个事务里清空并重新写入种子数据
func (r *RAGRepo) ReplaceAll(ctx context.Context, chunks []StoredChunk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RAGChunk{}).Error; err != nil {
			return err
		}
		for _, c := range chunks {
			raw, err := json.Marshal(c.Embedding)
			if err != nil {
				return err
			}
			row := RAGChunk{Source: c.Source, Content: c.Content, Embedding: raw}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RAGRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&RAGChunk{}).Count(&n).Error
	return n, err
}
