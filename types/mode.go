package types

import (
	"encoding/json"
	"strings"

	"szerzodes-gpt/errs"
)

// Mode 生成模式，只在系统边界解析一次
type Mode int

const (
	ModeFast Mode = iota + 1
	ModeDetailed
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeDetailed:
		return "detailed"
	default:
		return ""
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s, ModePolicyStrict)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ModePolicy 未知模式的处理方式
type ModePolicy int

const (
	// ModePolicyStrict 未知模式返回校验错误
	ModePolicyStrict ModePolicy = iota
	// ModePolicyLenient 只要不是 fast 就走 detailed
	ModePolicyLenient
)

func ParseModePolicy(s string) ModePolicy {
	if strings.EqualFold(strings.TrimSpace(s), "lenient") {
		return ModePolicyLenient
	}
	return ModePolicyStrict
}

// NormalizeModeString 去掉最后一个分隔符之前的所有内容并转小写，
// 例如 "GenerationMode.fast" -> "fast"
func NormalizeModeString(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.LastIndexAny(s, ".:/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func ParseMode(raw string, policy ModePolicy) (Mode, error) {
	switch NormalizeModeString(raw) {
	case "fast":
		return ModeFast, nil
	case "detailed":
		return ModeDetailed, nil
	}
	if policy == ModePolicyLenient {
		return ModeDetailed, nil
	}
	return 0, errs.Validation("generation_mode must be 'fast' or 'detailed', got %q", raw)
}
