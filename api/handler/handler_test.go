package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"szerzodes-gpt/logger"
	"szerzodes-gpt/service"
	"szerzodes-gpt/types"
)

type pdfRenderer struct{}

func (pdfRenderer) Render(ctx context.Context, req types.ExportRequest) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func TestExportFilenameIsEscaped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContractHandler(nil, service.NewExportService(pdfRenderer{}), logger.Nop())
	r := gin.New()
	r.POST("/export", h.Export)

	body, err := json.Marshal(map[string]any{
		"template_name":  "megbizasi",
		"format":         "pdf",
		"document_title": `Bérleti "A" szerződés`,
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", w.Body.String())

	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, `Bérleti_"A"_szerződés.pdf`, params["filename"])
}

func TestContentDispositionPlainName(t *testing.T) {
	assert.Equal(t, "attachment; filename=Szerz.pdf", contentDisposition("Szerz.pdf"))
}
