package handler

import (
	"github.com/gin-gonic/gin"

	"szerzodes-gpt/api/response"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/service"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

// GenerationHandler 模板生成以及 AI 助手接口
type GenerationHandler struct {
	generationSvc *service.GenerationService
	assistantSvc  *service.AssistantService
	modePolicy    types.ModePolicy
	log           *logger.Logger
}

func NewGenerationHandler(generationSvc *service.GenerationService, assistantSvc *service.AssistantService, modePolicy types.ModePolicy, log *logger.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationSvc: generationSvc,
		assistantSvc:  assistantSvc,
		modePolicy:    modePolicy,
		log:           log.With("component", "GenerationHandler"),
	}
}

// GenerateFromTemplate 快速模式下任何错误都降级为 200 + 空正文 + 说明
func (h *GenerationHandler) GenerateFromTemplate(c *gin.Context) {
	var req types.GenerateFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a contract_type és a mode mező kötelező")
		return
	}
	mode, err := types.ParseMode(req.Mode, h.modePolicy)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.generationSvc.Generate(c.Request.Context(), types.GenerationRequest{
		ContractType: req.ContractType,
		Mode:         mode,
		FormData:     req.FormData,
	})
	if err != nil {
		if mode == types.ModeFast {
			h.log.Warn("[Fast] generation failed, returning degraded result",
				"contract_type", req.ContractType,
				"error", err,
			)
			response.Success(c, &types.GenerationResult{
				ContractHTML: "",
				SummaryHU:    vars.SummaryFastUnavailable,
				Telemetry: types.Telemetry{
					Mode:     types.ModeFast,
					Degraded: true,
				},
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (h *GenerationHandler) Generate(c *gin.Context) {
	var req types.FreeGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: "+err.Error())
		return
	}
	resp, err := h.assistantSvc.GenerateFree(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (h *GenerationHandler) Review(c *gin.Context) {
	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a contract_text mező kötelező")
		return
	}
	resp, err := h.assistantSvc.Review(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (h *GenerationHandler) ApplySuggestions(c *gin.Context) {
	var req types.ApplySuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: az original_contract mező kötelező")
		return
	}
	resp, err := h.assistantSvc.ApplySuggestions(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (h *GenerationHandler) Improve(c *gin.Context) {
	var req types.ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a contract_text mező kötelező")
		return
	}
	resp, err := h.assistantSvc.Improve(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
