package prompt

import (
	"fmt"
	"sort"
	"strings"

	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

// BuildContractPrompt 纯函数：相同输入得到相同 prompt（不含时间戳，数据按 key 排序）
func BuildContractPrompt(templateHTML string, formData map[string]string, mode types.Mode) string {
	instruction := vars.ModeInstructionDetailed
	if mode == types.ModeFast {
		instruction = vars.ModeInstructionFast
	}
	return fmt.Sprintf(vars.ContractPrompt, instruction, vars.BlankMarker, templateHTML, FormatData(formData))
}

// FormatData 每行一个 "KEY: value"
func FormatData(data map[string]string) string {
	if len(data) == 0 {
		return "(nincs megadott adat)"
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, data[k])
	}
	return b.String()
}

func BuildPartiesPrompt(partiesText string, fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return fmt.Sprintf(vars.PartiesPrompt, partiesText, b.String())
}

func BuildFreeGeneratePrompt(req types.FreeGenerateRequest) string {
	extra := req.SpecialTerms
	if strings.TrimSpace(extra) == "" {
		extra = "nincs külön megadva"
	}
	return fmt.Sprintf(vars.FreeGeneratePrompt, req.Type, req.Parties, req.Subject, req.Payment, req.Duration, extra)
}

func BuildReviewPrompt(req types.ReviewRequest) string {
	contractType := req.ContractType
	if contractType == "" {
		contractType = "ismeretlen típus"
	}
	role := req.PartyRole
	if role == "" {
		role = "nem megadott szerep"
	}
	return fmt.Sprintf(vars.ReviewPrompt, contractType, role, req.ContractText, vars.MaxReviewIssues)
}

func BuildApplyPrompt(req types.ApplySuggestionsRequest) string {
	lines := make([]string, 0, len(req.IssuesToApply))
	for i, issue := range req.IssuesToApply {
		lines = append(lines, fmt.Sprintf("%d. Kivonat: %s\n   Probléma: %s\n   Javasolt módosítás: %s\n",
			i+1, issue.ClauseExcerpt, issue.Issue, issue.Suggestion))
	}
	summary := strings.Join(lines, "\n")
	if summary == "" {
		summary = vars.NoSuggestions
	}
	return fmt.Sprintf(vars.ApplyPrompt, req.OriginalContract, summary)
}

func BuildImprovePrompt(req types.ImproveRequest) string {
	var ctxParts []string
	if req.ContractType != "" {
		ctxParts = append(ctxParts, fmt.Sprintf("Szerződés típusa: %s.", req.ContractType))
	}
	if req.PartyRole != "" {
		ctxParts = append(ctxParts, fmt.Sprintf("A felhasználó szerepe: %s.", req.PartyRole))
	}
	return fmt.Sprintf(vars.ImprovePrompt, strings.Join(ctxParts, "\n"), req.ContractText)
}
