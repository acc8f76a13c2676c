package parse

import (
	"fmt"
	"strings"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

// ParseReview 解析审查结果。问题数超过上限时截断，
// truncated 返回被丢弃的条数
func ParseReview(raw string) (resp *types.ReviewResponse, truncated int, err error) {
	var out types.ReviewResponse
	if err := DecodeJSON(raw, &out); err != nil {
		return nil, 0, err
	}
	if out.OverallRisk == "" {
		return nil, 0, errs.External("decode review", fmt.Errorf("missing overall_risk"))
	}
	for i := range out.Issues {
		out.Issues[i].DisadvantagedParty = normalizeParty(out.Issues[i].DisadvantagedParty)
		if out.Issues[i].RiskLevel == "" {
			return nil, 0, errs.External("decode review", fmt.Errorf("issue %d: missing risk_level", i))
		}
	}
	if out.Issues == nil {
		out.Issues = []types.ReviewIssue{}
	}
	if n := len(out.Issues); n > vars.MaxReviewIssues {
		truncated = n - vars.MaxReviewIssues
		out.Issues = out.Issues[:vars.MaxReviewIssues]
	}
	return &out, truncated, nil
}

// 空串和字面量 "null" 都视为没有受损方
func normalizeParty(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

func ParseApplySuggestions(raw string) (*types.ApplySuggestionsResponse, error) {
	var out types.ApplySuggestionsResponse
	if err := DecodeJSON(raw, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.UpdatedContractText) == "" {
		return nil, errs.External("decode apply-suggestions", fmt.Errorf("missing updated_contract_text"))
	}
	return &out, nil
}
