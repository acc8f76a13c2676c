package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/alias"
	"szerzodes-gpt/logic/chat"
	"szerzodes-gpt/logic/parties"
	"szerzodes-gpt/logic/placeholder"
	"szerzodes-gpt/logic/prompt"
	"szerzodes-gpt/templates"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

const (
	keyParties     = "PARTIES"
	keyPartiesText = "PARTIES_TEXT"

	detailedTemperature = 0.3
	detailedMaxTokens   = 4000
	fastModelLabel      = "template"
)

// RequiredKeys 快速模式下保证存在的字段
var RequiredKeys = append(append([]string{}, parties.Fields...),
	keyPartiesText,
	"SUBJECT",
	"FEE",
	"PAYMENT_TERMS",
	"DURATION",
	"START_DATE",
	"PLACE",
	"DATE",
	"SPECIAL_TERMS",
)

type PartyNormalizer interface {
	Normalize(ctx context.Context, text string) (map[string]string, error)
}

type GenerationConfig struct {
	DetailedModel   string
	PartiesStrategy string
}

// modelNamer 由 chat.EinoGateway 实现，用于遥测里记录实际模型
type modelNamer interface {
	ModelName(requested string) string
}

type GenerationService struct {
	templates templates.Store
	parties   PartyNormalizer
	gateway   chat.Gateway
	cfg       GenerationConfig
	log       *logger.Logger
}

func NewGenerationService(store templates.Store, normalizer PartyNormalizer, gateway chat.Gateway, cfg GenerationConfig, log *logger.Logger) *GenerationService {
	if cfg.PartiesStrategy == "" {
		cfg.PartiesStrategy = vars.PartiesNormalize
	}
	return &GenerationService{
		templates: store,
		parties:   normalizer,
		gateway:   gateway,
		cfg:       cfg,
		log:       log.With("component", "GenerationDispatcher"),
	}
}

// Generate 按模式分发。错误原样返回，快速模式的降级在 HTTP 层处理
func (s *GenerationService) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	switch req.Mode {
	case types.ModeFast:
		return s.generateFast(ctx, req)
	case types.ModeDetailed:
		return s.generateDetailed(ctx, req)
	default:
		return nil, errs.Validation("unknown generation mode %d", int(req.Mode))
	}
}

func (s *GenerationService) generateFast(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	start := time.Now()
	requestID := uuid.NewString()

	data := alias.Remap(req.FormData)

	rawParties := strings.TrimSpace(data[keyParties])
	strategy := s.applyPartiesStrategy(ctx, requestID, rawParties, data)

	for _, k := range RequiredKeys {
		if _, ok := data[k]; !ok {
			data[k] = ""
		}
	}

	roleSource := rawParties
	if roleSource == "" {
		roleSource = data[keyPartiesText]
	}
	parties.SplitRoles(roleSource).Apply(data)

	tpl, err := s.templates.Load(req.ContractType, types.ModeFast)
	if err != nil {
		return nil, err
	}
	names := placeholder.Extract(tpl)
	html := placeholder.Fill(tpl, alias.Resolve(names, data))

	s.log.Info("[Fast] generated",
		"request_id", requestID,
		"contract_type", req.ContractType,
		"placeholders", len(names),
		"parties_strategy", strategy,
	)

	return &types.GenerationResult{
		ContractHTML: html,
		SummaryHU:    vars.SummaryFast,
		Telemetry: types.Telemetry{
			RequestID:       requestID,
			Mode:            types.ModeFast,
			Model:           fastModelLabel,
			DurationSec:     time.Since(start).Seconds(),
			Template:        templates.FileName(req.ContractType, types.ModeFast),
			Placeholders:    len(names),
			PartiesStrategy: strategy,
		},
	}, nil
}

// applyPartiesStrategy 返回实际采用的策略，归一化失败时退回原文
func (s *GenerationService) applyPartiesStrategy(ctx context.Context, requestID, raw string, data map[string]string) string {
	if raw == "" {
		return ""
	}
	if s.cfg.PartiesStrategy == vars.PartiesRaw || s.parties == nil {
		data[keyPartiesText] = raw
		return vars.PartiesRaw
	}

	structured, err := s.parties.Normalize(ctx, raw)
	if err != nil {
		s.log.Warn("[Fast] party normalization failed, keeping raw text",
			"request_id", requestID,
			"error", err,
			"parties_text", raw,
		)
		data[keyPartiesText] = raw
		return vars.PartiesRaw
	}

	for _, k := range parties.Fields {
		if v := strings.TrimSpace(structured[k]); v != "" {
			data[k] = v
		}
	}
	return vars.PartiesNormalize
}

func (s *GenerationService) generateDetailed(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	start := time.Now()
	requestID := uuid.NewString()

	tpl, err := s.templates.Load(req.ContractType, types.ModeDetailed)
	if err != nil {
		return nil, err
	}

	modelName := s.cfg.DetailedModel
	if n, ok := s.gateway.(modelNamer); ok {
		modelName = n.ModelName(modelName)
	}

	out, err := s.gateway.Invoke(ctx, chat.Invocation{
		Model:        s.cfg.DetailedModel,
		SystemPrompt: vars.SystemPromptGenerator,
		UserPrompt:   prompt.BuildContractPrompt(tpl, req.FormData, types.ModeDetailed),
		Temperature:  detailedTemperature,
		MaxTokens:    detailedMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	duration := time.Since(start).Seconds()
	s.log.Info("[Detailed] generated",
		"request_id", requestID,
		"contract_type", req.ContractType,
		"model", modelName,
		"duration_sec", duration,
	)

	return &types.GenerationResult{
		ContractHTML: out,
		SummaryHU:    vars.SummaryDetailed,
		Telemetry: types.Telemetry{
			RequestID:   requestID,
			Mode:        types.ModeDetailed,
			Model:       modelName,
			DurationSec: duration,
			MaxTokens:   detailedMaxTokens,
			Temperature: detailedTemperature,
			Template:    templates.FileName(req.ContractType, types.ModeDetailed),
		},
	}, nil
}
