package types

import "time"

type CreateContractRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	ContractType string `json:"contract_type"`
}

type ContractView struct {
	DocID        string    `json:"doc_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContractType string    `json:"contract_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type SearchRequest struct {
	Query        string `json:"query" binding:"required"`
	ContractType string `json:"contract_type"`
	TopK         int    `json:"top_k"`
}

type LegalContext struct {
	Source  string  `json:"source"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

// ExportRequest 导出请求，渲染交给外部 renderer
type ExportRequest struct {
	TemplateName   string            `json:"template_name" binding:"required"`
	Format         string            `json:"format" binding:"required"`
	TemplateVars   map[string]string `json:"template_vars"`
	DocumentTitle  string            `json:"document_title"`
	DocumentDate   string            `json:"document_date"`
	DocumentNumber string            `json:"document_number"`
	BrandName      string            `json:"brand_name"`
	BrandSubtitle  string            `json:"brand_subtitle"`
	FooterText     string            `json:"footer_text"`
}
