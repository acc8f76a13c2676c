package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedact(t *testing.T) {
	in := []any{
		"OPENAI_API_KEY", "sk-123",
		"parties_text", "Kiss János",
		"contract_type", "megbizasi",
		"dangling",
	}
	out := redact(in)
	assert.Equal(t, []any{
		"OPENAI_API_KEY", "[REDACTED]",
		"parties_text", "[10 chars]",
		"contract_type", "megbizasi",
		"dangling",
	}, out)
	// 不修改调用方的切片
	assert.Equal(t, "sk-123", in[1])
}

func TestWithRedactsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := wrap(zap.New(core)).With("component", "Test")

	l.Info("called", "contract_text", "Megbízási szerződés")
	l.Debug("dropped below level")

	entries := logs.All()
	assert.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Test", ctx["component"])
	assert.Equal(t, "[19 chars]", ctx["contract_text"])
}
