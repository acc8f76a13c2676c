package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/types"
)

type fakeRenderer struct {
	got types.ExportRequest
}

func (f *fakeRenderer) Render(ctx context.Context, req types.ExportRequest) ([]byte, error) {
	f.got = req
	return []byte("%PDF-1.4"), nil
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := NewExportService(&fakeRenderer{}).Export(context.Background(), types.ExportRequest{TemplateName: "megbizasi", Format: "odt"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestExportNotConfigured(t *testing.T) {
	_, err := NewExportService(nil).Export(context.Background(), types.ExportRequest{TemplateName: "megbizasi", Format: "pdf"})
	assert.ErrorIs(t, err, errs.ErrConfig)
}

func TestExportDelegates(t *testing.T) {
	r := &fakeRenderer{}
	file, err := NewExportService(r).Export(context.Background(), types.ExportRequest{
		TemplateName:  "megbizasi",
		Format:        "PDF",
		DocumentTitle: "Megbízási szerződés",
	})
	require.NoError(t, err)
	assert.Equal(t, "Megbízási_szerződés.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "pdf", r.got.Format)
	assert.Equal(t, defaultBrandName, r.got.BrandName)
	assert.NotNil(t, r.got.TemplateVars)
}
