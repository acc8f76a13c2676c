package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"szerzodes-gpt/api/response"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/ingestion/parser"
	"szerzodes-gpt/service"
	"szerzodes-gpt/types"
)

// ContractHandler 合同记录、文本提取、导出
type ContractHandler struct {
	contractSvc *service.ContractService
	exportSvc   *service.ExportService
	log         *logger.Logger
}

func NewContractHandler(contractSvc *service.ContractService, exportSvc *service.ExportService, log *logger.Logger) *ContractHandler {
	return &ContractHandler{
		contractSvc: contractSvc,
		exportSvc:   exportSvc,
		log:         log.With("component", "ContractHandler"),
	}
}

func (h *ContractHandler) Create(c *gin.Context) {
	var req types.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a title és a content mező kötelező")
		return
	}
	view, err := h.contractSvc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

func (h *ContractHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	items, err := h.contractSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (h *ContractHandler) Get(c *gin.Context) {
	view, err := h.contractSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.contractSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"doc_id": c.Param("id"), "status": "deleted"})
}

func (h *ContractHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a query mező kötelező")
		return
	}
	items, err := h.contractSvc.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// ExtractText multipart 字段名为 file
func (h *ContractHandler) ExtractText(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, "Nem érkezett fájl, a mező neve 'file' legyen")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	text, err := parser.Extract(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		h.log.Warn("[Extract] failed", "file", fileHeader.Filename, "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, types.ExtractResponse{Text: text})
}

func (h *ContractHandler) Export(c *gin.Context) {
	var req types.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Hibás kérés: a template_name és a format mező kötelező")
		return
	}
	file, err := h.exportSvc.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", contentDisposition(file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// contentDisposition 标题可能含引号或匈牙利语字符，交给 mime 转义
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
