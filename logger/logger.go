package logger

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Logger zap 的薄封装，所有键值对写出前统一打码
type Logger struct {
	sugar *zap.SugaredLogger
}

// New mode: "prod" 输出 JSON（Info 级别），其余为开发模式（Debug 级别）
func New(mode string) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if m := strings.ToLower(mode); m == "prod" || m == "production" {
		cfg = zap.NewProductionConfig()
	}
	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return wrap(zl), nil
}

// Nop 测试用
func Nop() *Logger { return wrap(zap.NewNop()) }

func wrap(zl *zap.Logger) *Logger { return &Logger{sugar: zl.Sugar()} }

func (l *Logger) Sync() { _ = l.sugar.Sync() }

func (l *Logger) Debug(msg string, kv ...any) { l.sugar.Debugw(msg, redact(kv)...) }
func (l *Logger) Info(msg string, kv ...any)  { l.sugar.Infow(msg, redact(kv)...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.sugar.Warnw(msg, redact(kv)...) }
func (l *Logger) Error(msg string, kv ...any) { l.sugar.Errorw(msg, redact(kv)...) }
func (l *Logger) Fatal(msg string, kv ...any) { l.sugar.Fatalw(msg, redact(kv)...) }

func (l *Logger) With(kv ...any) *Logger {
	return &Logger{sugar: l.sugar.With(redact(kv)...)}
}

// 凭据整体隐藏；合同和当事人原文只记录长度
var (
	secretKeys = []string{"api_key", "apikey", "token", "password", "secret"}
	textKeys   = []string{"parties_text", "contract_text"}
)

func redact(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, len(kv))
	copy(out, kv)
	for i := 0; i+1 < len(out); i += 2 {
		key := strings.ToLower(fmt.Sprint(out[i]))
		switch {
		case containsAny(key, secretKeys):
			out[i+1] = "[REDACTED]"
		case containsAny(key, textKeys):
			out[i+1] = fmt.Sprintf("[%d chars]", utf8.RuneCountInString(fmt.Sprint(out[i+1])))
		}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
