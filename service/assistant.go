package service

import (
	"context"
	"strings"

	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/chat"
	"szerzodes-gpt/logic/parse"
	"szerzodes-gpt/logic/prompt"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

const (
	generateTemperature = 0.25
	reviewTemperature   = 0.2
	applyTemperature    = 0.25
	improveTemperature  = 0.3
)

// AssistantService 自由生成、审查、应用修改建议、改写
type AssistantService struct {
	gateway chat.Gateway
	model   string
	log     *logger.Logger
}

func NewAssistantService(gateway chat.Gateway, model string, log *logger.Logger) *AssistantService {
	return &AssistantService{gateway: gateway, model: model, log: log.With("component", "Assistant")}
}

// GenerateFree 不依赖模板，返回按分隔符拆开的正文和摘要
func (s *AssistantService) GenerateFree(ctx context.Context, req types.FreeGenerateRequest) (*types.FreeGenerateResponse, error) {
	raw, err := s.gateway.Invoke(ctx, chat.Invocation{
		Model:        s.model,
		SystemPrompt: vars.SystemPromptContract,
		UserPrompt:   prompt.BuildFreeGeneratePrompt(req),
		Temperature:  generateTemperature,
	})
	if err != nil {
		return nil, err
	}
	contract, summary := parse.SplitContractSummary(raw)
	return &types.FreeGenerateResponse{
		ContractText: contract,
		SummaryHU:    summary,
		SummaryEN:    nil,
	}, nil
}

func (s *AssistantService) Review(ctx context.Context, req types.ReviewRequest) (*types.ReviewResponse, error) {
	raw, err := s.gateway.Invoke(ctx, chat.Invocation{
		Model:        s.model,
		SystemPrompt: vars.SystemPromptReview,
		UserPrompt:   prompt.BuildReviewPrompt(req),
		Temperature:  reviewTemperature,
	})
	if err != nil {
		return nil, err
	}
	resp, truncated, err := parse.ParseReview(raw)
	if err != nil {
		s.log.Warn("[Review] invalid model output", "error", err)
		return nil, err
	}
	if truncated > 0 {
		s.log.Warn("[Review] too many issues, truncated", "dropped", truncated, "limit", vars.MaxReviewIssues)
	}
	return resp, nil
}

func (s *AssistantService) ApplySuggestions(ctx context.Context, req types.ApplySuggestionsRequest) (*types.ApplySuggestionsResponse, error) {
	raw, err := s.gateway.Invoke(ctx, chat.Invocation{
		Model:        s.model,
		SystemPrompt: vars.SystemPromptApply,
		UserPrompt:   prompt.BuildApplyPrompt(req),
		Temperature:  applyTemperature,
	})
	if err != nil {
		return nil, err
	}
	return parse.ParseApplySuggestions(raw)
}

// Improve 模型只返回改写后的全文，不带摘要
func (s *AssistantService) Improve(ctx context.Context, req types.ImproveRequest) (*types.ImproveResponse, error) {
	raw, err := s.gateway.Invoke(ctx, chat.Invocation{
		Model:        s.model,
		SystemPrompt: vars.SystemPromptImprove + "\n\n" + vars.SystemPromptContract,
		UserPrompt:   prompt.BuildImprovePrompt(req),
		Temperature:  improveTemperature,
	})
	if err != nil {
		return nil, err
	}
	return &types.ImproveResponse{ImprovedText: strings.TrimSpace(raw)}, nil
}
