package handler

import (
	"github.com/gin-gonic/gin"

	"szerzodes-gpt/api/response"
	"szerzodes-gpt/service"
	"szerzodes-gpt/types"
)

type RAGHandler struct {
	ragSvc *service.RAGService
}

func NewRAGHandler(ragSvc *service.RAGService) *RAGHandler {
	return &RAGHandler{ragSvc: ragSvc}
}

func (h *RAGHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a query mező kötelező")
		return
	}
	if h.ragSvc == nil {
		response.Success(c, []types.LegalContext{})
		return
	}
	items, err := h.ragSvc.Search(c.Request.Context(), req.Query, req.TopK)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
