package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/vars"
)

// SplitContractSummary 按 [OSSZEFOGLALO] 第一次出现的位置拆分模型回复；
// 没有分隔符时整段作为合同正文，摘要用固定文案。任何输入都不会失败
func SplitContractSummary(text string) (contract string, summary string) {
	before, after, found := strings.Cut(text, vars.SummaryDelimiter)
	if !found {
		return strings.TrimSpace(text), vars.SummaryFallback
	}
	contract = strings.TrimSpace(strings.ReplaceAll(before, vars.ContractDelimiter, ""))
	return contract, strings.TrimSpace(after)
}

// ExtractJSONObject 清洗模型返回的 JSON：去掉 ``` 代码块，截取最外层 {...}
func ExtractJSONObject(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

// DecodeJSON 解析失败属于外部依赖错误（模型没按要求返回）
func DecodeJSON(raw string, v any) error {
	cleaned := ExtractJSONObject(raw)
	if cleaned == "" {
		return errs.External("decode model json", fmt.Errorf("empty response"))
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return errs.External("decode model json", fmt.Errorf("%v, raw: %s", err, truncate(raw, 200)))
	}
	return nil
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
