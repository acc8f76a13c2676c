package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"szerzodes-gpt/errs"
)

// ContractRepo 封装对 Contract 表的所有操作
type ContractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) *ContractRepo {
	return &ContractRepo{db: db}
}

func (r *ContractRepo) Create(ctx context.Context, contract *Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

// GetByDocID 不存在时返回 ErrNotFound
func (r *ContractRepo) GetByDocID(ctx context.Context, docID string) (*Contract, error) {
	var contract Contract
	err := r.db.WithContext(ctx).
		Where("doc_id = ?", docID).
		First(&contract).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("contract %s", docID)
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetByDocIDs 保持传入顺序，缺失的 ID 跳过
func (r *ContractRepo) GetByDocIDs(ctx context.Context, docIDs []string) ([]Contract, error) {
	if len(docIDs) == 0 {
		return []Contract{}, nil
	}
	var found []Contract
	if err := r.db.WithContext(ctx).Where("doc_id IN ?", docIDs).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]Contract, len(found))
	for _, c := range found {
		byID[c.DocID] = c
	}
	out := make([]Contract, 0, len(found))
	for _, id := range docIDs {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// List 按创建时间倒序
func (r *ContractRepo) List(ctx context.Context, limit, offset int) ([]Contract, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var results []Contract
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	return results, err
}

// SearchByKeyword 简单的 SQL 模糊搜索，没有 ES 时兜底；contractType 非空时精确过滤
func (r *ContractRepo) SearchByKeyword(ctx context.Context, keyword, contractType string, limit int) ([]Contract, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []Contract
	pattern := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	tx := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR contract_type LIKE ?", pattern, pattern, pattern)
	if contractType != "" {
		tx = tx.Where("contract_type = ?", contractType)
	}
	err := tx.
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

func (r *ContractRepo) Delete(ctx context.Context, docID string) error {
	return r.db.WithContext(ctx).Where("doc_id = ?", docID).Delete(&Contract{}).Error
}
