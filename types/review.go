package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// 模型有时直接返回匈牙利语的等级
var riskAliases = map[string]RiskLevel{
	"low":      RiskLow,
	"medium":   RiskMedium,
	"high":     RiskHigh,
	"alacsony": RiskLow,
	"közepes":  RiskMedium,
	"kozepes":  RiskMedium,
	"magas":    RiskHigh,
}

func ParseRiskLevel(s string) (RiskLevel, error) {
	if r, ok := riskAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown risk level %q", s)
}

func (r *RiskLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	lvl, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = lvl
	return nil
}

type ReviewRequest struct {
	ContractText string `json:"contract_text" binding:"required"`
	ContractType string `json:"contract_type"`
	PartyRole    string `json:"party_role"`
}

type ReviewIssue struct {
	ClauseExcerpt string    `json:"clause_excerpt"`
	Issue         string    `json:"issue"`
	RiskLevel     RiskLevel `json:"risk_level"`
	// nil 表示没有明确的受损方，序列化为 JSON null
	DisadvantagedParty *string `json:"disadvantaged_party"`
	Suggestion         string  `json:"suggestion"`
}

type ReviewResponse struct {
	SummaryHU   string        `json:"summary_hu"`
	Issues      []ReviewIssue `json:"issues"`
	OverallRisk RiskLevel     `json:"overall_risk"`
	Notes       *string       `json:"notes,omitempty"`
}

type ApplySuggestionsRequest struct {
	OriginalContract string        `json:"original_contract" binding:"required"`
	IssuesToApply    []ReviewIssue `json:"issues_to_apply"`
}

type ApplySuggestionsResponse struct {
	UpdatedContractText string `json:"updated_contract_text"`
	ChangeSummary       string `json:"change_summary"`
}

type ImproveRequest struct {
	ContractText string `json:"contract_text" binding:"required"`
	ContractType string `json:"contract_type"`
	PartyRole    string `json:"party_role"`
}

type ImproveResponse struct {
	ImprovedText string  `json:"improved_text"`
	SummaryHU    *string `json:"summary_hu"`
}
