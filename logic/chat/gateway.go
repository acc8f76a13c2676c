package chat

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
)

var errEmptyResponse = errors.New("empty response message")

// Invocation 一次底层模型调用
type Invocation struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// Gateway 所有 LLM 调用的唯一入口，返回模型的原始文本
type Gateway interface {
	Invoke(ctx context.Context, in Invocation) (string, error)
}

type EinoGateway struct {
	chatModel model.BaseChatModel
	// ollama 的 chat model 绑定单一模型，不接受按次切换
	fixedModel string
	log        *logger.Logger
}

func NewEinoGateway(chatModel model.BaseChatModel, log *logger.Logger) *EinoGateway {
	return &EinoGateway{chatModel: chatModel, log: log.With("component", "LLMGateway")}
}

// NewFixedModelGateway 忽略 Invocation.Model，始终使用 modelName
func NewFixedModelGateway(chatModel model.BaseChatModel, modelName string, log *logger.Logger) *EinoGateway {
	g := NewEinoGateway(chatModel, log)
	g.fixedModel = modelName
	return g
}

// ModelName 实际会被调用的模型
func (g *EinoGateway) ModelName(requested string) string {
	if g.fixedModel != "" {
		return g.fixedModel
	}
	return requested
}

func (g *EinoGateway) Invoke(ctx context.Context, in Invocation) (string, error) {
	opts := []model.Option{model.WithTemperature(in.Temperature)}
	if in.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(in.MaxTokens))
	}
	if g.fixedModel == "" && in.Model != "" {
		opts = append(opts, model.WithModel(in.Model))
	}

	msgs := make([]*schema.Message, 0, 2)
	if in.SystemPrompt != "" {
		msgs = append(msgs, schema.SystemMessage(in.SystemPrompt))
	}
	msgs = append(msgs, schema.UserMessage(in.UserPrompt))

	start := time.Now()
	resp, err := g.chatModel.Generate(ctx, msgs, opts...)
	if err != nil {
		g.log.Error("[LLM] call failed", "model", g.ModelName(in.Model), "error", err)
		return "", errs.External("llm invoke", err)
	}
	if resp == nil {
		return "", errs.External("llm invoke", errEmptyResponse)
	}
	g.log.Debug("[LLM] call finished",
		"model", g.ModelName(in.Model),
		"duration", time.Since(start),
		"chars", len(resp.Content),
	)
	return resp.Content, nil
}
