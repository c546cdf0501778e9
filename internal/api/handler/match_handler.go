package handler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/processor"
	"resume-match-go/internal/types"
)

// MatchHandler 简历提取与匹配的HTTP处理器，协调处理器流水线与PDF前置提取
type MatchHandler struct {
	cfg             *config.Config
	processorModule *processor.MatchProcessor
	pdfExtractor    *parser.PDFExtractor
}

// NewMatchHandler 创建匹配处理器。pdfExtractor 可为nil，此时不支持PDF上传。
func NewMatchHandler(cfg *config.Config, processorModule *processor.MatchProcessor, pdfExtractor *parser.PDFExtractor) *MatchHandler {
	return &MatchHandler{
		cfg:             cfg,
		processorModule: processorModule,
		pdfExtractor:    pdfExtractor,
	}
}

// ExtractRequest 结构化提取请求
type ExtractRequest struct {
	Text   string `json:"text"`
	Engine string `json:"engine"` // 留空使用配置的默认引擎
}

// MatchRequest 简历-岗位匹配请求。
// ResumeText 与 Resume 二选一：前者走完整提取流水线，后者直接评分。
type MatchRequest struct {
	ResumeText string               `json:"resume_text,omitempty"`
	Resume     *types.ResumeRecord  `json:"resume,omitempty"`
	Engine     string               `json:"engine,omitempty"`
	Job        types.JobDescription `json:"job"`
}

// MatchResponse 匹配响应：评分结果加提取出的简历结构
type MatchResponse struct {
	Result *types.MatchResult  `json:"result"`
	Resume *types.ResumeRecord `json:"resume,omitempty"`
}

// HandleExtract 处理结构化提取请求
func (h *MatchHandler) HandleExtract(ctx context.Context, req *ExtractRequest) (*types.ResumeRecord, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("text不能为空")
	}
	return h.processorModule.Extract(ctx, req.Text, req.Engine)
}

// HandleExtractPDF 从PDF流提取文本后走结构化提取
func (h *MatchHandler) HandleExtractPDF(ctx context.Context, file io.Reader, filename, engine string) (*types.ResumeRecord, error) {
	if h.pdfExtractor == nil {
		return nil, fmt.Errorf("PDF提取未启用")
	}
	text, err := h.pdfExtractor.ExtractFromReader(ctx, file, filename)
	if err != nil {
		return nil, err
	}
	logger.Ctx(ctx).Debug().
		Str("filename", filename).
		Int("chars", len(text)).
		Msg("PDF文本提取完成，进入结构化提取")
	return h.processorModule.Extract(ctx, text, engine)
}

// HandleMatch 处理简历-岗位匹配请求
func (h *MatchHandler) HandleMatch(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	if req.Resume != nil {
		result, err := h.processorModule.MatchParsed(ctx, req.Resume, req.Job)
		if err != nil {
			return nil, err
		}
		return &MatchResponse{Result: result}, nil
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, fmt.Errorf("resume_text与resume至少提供一个")
	}
	result, resume, err := h.processorModule.Match(ctx, req.ResumeText, req.Engine, req.Job)
	if err != nil {
		return nil, err
	}
	return &MatchResponse{Result: result, Resume: resume}, nil
}
