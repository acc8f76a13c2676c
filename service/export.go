package service

import (
	"context"
	"strings"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/types"
)

const (
	defaultDocumentTitle = "Szerződés"
	defaultBrandName     = "Magyar SzerződésGPT"
	defaultBrandSubtitle = "AI-alapú szerződésgenerálás (általános tájékoztatás, nem jogi tanácsadás)"
	defaultFooterText    = "A dokumentum automatikusan generált, és nem minősül jogi tanácsadásnak."
)

var exportMIME = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Renderer HTML 渲染和 PDF/DOCX 生成由外部服务完成
type Renderer interface {
	Render(ctx context.Context, req types.ExportRequest) ([]byte, error)
}

type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	renderer Renderer
}

func NewExportService(renderer Renderer) *ExportService {
	return &ExportService{renderer: renderer}
}

// Export 校验格式并补齐版式默认值，未注入 renderer 时返回 ErrConfig
func (s *ExportService) Export(ctx context.Context, req types.ExportRequest) (*ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	mime, ok := exportMIME[format]
	if !ok {
		return nil, errs.Validation("unsupported export format %q", req.Format)
	}
	if strings.TrimSpace(req.TemplateName) == "" {
		return nil, errs.Validation("template_name is required")
	}
	req.Format = format
	applyExportDefaults(&req)

	if s.renderer == nil {
		return nil, errs.Config("export renderer not configured")
	}
	data, err := s.renderer.Render(ctx, req)
	if err != nil {
		return nil, errs.External("render export", err)
	}
	return &ExportFile{
		FileName:    strings.ReplaceAll(req.DocumentTitle, " ", "_") + "." + format,
		ContentType: mime,
		Data:        data,
	}, nil
}

func applyExportDefaults(req *types.ExportRequest) {
	if req.DocumentTitle == "" {
		req.DocumentTitle = defaultDocumentTitle
	}
	if req.BrandName == "" {
		req.BrandName = defaultBrandName
	}
	if req.BrandSubtitle == "" {
		req.BrandSubtitle = defaultBrandSubtitle
	}
	if req.FooterText == "" {
		req.FooterText = defaultFooterText
	}
	if req.TemplateVars == nil {
		req.TemplateVars = map[string]string{}
	}
}
