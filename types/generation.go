package types

// GenerateFromTemplateRequest HTTP 入参，mode 为原始字符串
type GenerateFromTemplateRequest struct {
	ContractType string            `json:"contract_type" binding:"required"`
	Mode         string            `json:"mode" binding:"required"`
	FormData     map[string]string `json:"form_data"`
}

// GenerationRequest 调度器入参，mode 已解析
type GenerationRequest struct {
	ContractType string
	Mode         Mode
	FormData     map[string]string
}

type GenerationResult struct {
	ContractHTML string    `json:"contract_html"`
	SummaryHU    string    `json:"summary_hu"`
	Telemetry    Telemetry `json:"telemetry"`
}

// Telemetry 仅供参考，不参与正确性判断
type Telemetry struct {
	RequestID       string  `json:"request_id"`
	Mode            Mode    `json:"mode"`
	Model           string  `json:"model"`
	DurationSec     float64 `json:"duration_sec"`
	MaxTokens       int     `json:"max_tokens"`
	Temperature     float32 `json:"temperature"`
	Template        string  `json:"template,omitempty"`
	Placeholders    int     `json:"placeholders,omitempty"`
	PartiesStrategy string  `json:"parties_strategy,omitempty"`
	Degraded        bool    `json:"degraded,omitempty"`
}

// FreeGenerateRequest 不依赖模板的自由生成
type FreeGenerateRequest struct {
	Type         string `json:"type" binding:"required"`
	Parties      string `json:"parties" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Payment      string `json:"payment" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	SpecialTerms string `json:"special_terms"`
}

type FreeGenerateResponse struct {
	ContractText string  `json:"contract_text"`
	SummaryHU    string  `json:"summary_hu"`
	SummaryEN    *string `json:"summary_en"`
}
