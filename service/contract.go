package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/storage/es"
	"szerzodes-gpt/storage/postgres"
	"szerzodes-gpt/types"
)

const defaultTopK = 10

// ContractIndex 全文检索，未配置 ESADDR 时为 nil，退回 SQL 模糊搜索
type ContractIndex interface {
	Store(ctx context.Context, docs ...es.Document) error
	Search(ctx context.Context, query string, filter *es.Filter, topK int) ([]es.Hit, error)
	DeleteByDocID(ctx context.Context, docID string) error
}

type ContractService struct {
	pgRepo *postgres.ContractRepo
	index  ContractIndex
	log    *logger.Logger
}

func NewContractService(pgRepo *postgres.ContractRepo, index ContractIndex, log *logger.Logger) *ContractService {
	return &ContractService{pgRepo: pgRepo, index: index, log: log.With("component", "ContractService")}
}

// Create 先写 PG，再写 ES；ES 失败只记录日志
func (s *ContractService) Create(ctx context.Context, req types.CreateContractRequest) (*types.ContractView, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, errs.Validation("title and content are required")
	}
	c := &postgres.Contract{
		DocID:        uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		ContractType: strings.TrimSpace(req.ContractType),
	}
	if err := s.pgRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	if s.index != nil {
		err := s.index.Store(ctx, es.Document{
			DocID:        c.DocID,
			Title:        c.Title,
			Content:      c.Content,
			ContractType: c.ContractType,
			CreatedAt:    c.CreatedAt,
		})
		if err != nil {
			s.log.Warn("[ES] index failed, contract saved without search entry", "doc_id", c.DocID, "error", err)
		}
	}
	view := c.View()
	return &view, nil
}

func (s *ContractService) Get(ctx context.Context, docID string) (*types.ContractView, error) {
	if _, err := uuid.Parse(docID); err != nil {
		return nil, errs.Validation("invalid contract id %q", docID)
	}
	c, err := s.pgRepo.GetByDocID(ctx, docID)
	if err != nil {
		return nil, err
	}
	view := c.View()
	return &view, nil
}

func (s *ContractService) List(ctx context.Context, limit, offset int) ([]types.ContractView, error) {
	rows, err := s.pgRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return views(rows), nil
}

// Search 优先 ES，ES 出错时退回 SQL
func (s *ContractService) Search(ctx context.Context, req types.SearchRequest) ([]types.ContractView, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errs.Validation("query is required")
	}
	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	contractType := strings.TrimSpace(req.ContractType)
	var filter *es.Filter
	if contractType != "" {
		filter = &es.Filter{ContractType: contractType}
	}

	if s.index != nil {
		hits, err := s.index.Search(ctx, query, filter, topK)
		if err == nil {
			ids := make([]string, 0, len(hits))
			for _, h := range hits {
				ids = append(ids, h.DocID)
			}
			rows, err := s.pgRepo.GetByDocIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return views(rows), nil
		}
		s.log.Warn("[ES] search failed, falling back to SQL", "error", err)
	}

	rows, err := s.pgRepo.SearchByKeyword(ctx, query, contractType, topK)
	if err != nil {
		return nil, err
	}
	return views(rows), nil
}

// Delete 先删 PG，再清理 ES
func (s *ContractService) Delete(ctx context.Context, docID string) error {
	if _, err := s.Get(ctx, docID); err != nil {
		return err
	}
	if err := s.pgRepo.Delete(ctx, docID); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.DeleteByDocID(ctx, docID); err != nil {
			s.log.Warn("[ES] delete failed", "doc_id", docID, "error", err)
		}
	}
	return nil
}

func views(rows []postgres.Contract) []types.ContractView {
	out := make([]types.ContractView, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].View())
	}
	return out
}
