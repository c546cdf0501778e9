package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"resume-match-go/internal/logger"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoparser "github.com/cloudwego/eino/components/document/parser"
)

// pdf解析的单次超时
const pdfParseTimeout = 30 * time.Second

// PDFExtractor 从PDF文件或流中提取纯文本，供提取器流水线消费
type PDFExtractor struct {
	parser *pdf.PDFParser
}

// NewPDFExtractor 初始化PDF文本提取器。
// ToPages=false：整个文档作为单个连续文本返回，章节切分由下游负责。
func NewPDFExtractor(ctx context.Context) (*PDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建PDF解析器失败: %w", err)
	}
	return &PDFExtractor{parser: p}, nil
}

// ExtractFromFile 从PDF文件路径提取全文
func (e *PDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开PDF文件失败 %s: %w", filePath, err)
	}
	defer file.Close()
	return e.ExtractFromReader(ctx, file, filePath)
}

// ExtractFromReader 从 io.Reader 提取全文
func (e *PDFExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pdfParseTimeout)
	defer cancel()

	start := time.Now()
	docs, err := e.parser.Parse(ctx, reader, einoparser.WithURI(uri))
	if err != nil {
		return "", fmt.Errorf("PDF解析失败 (URI: %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("PDF解析无结果 (URI: %s)", uri)
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(doc.Content)
	}

	logger.Ctx(ctx).Debug().
		Str("uri", uri).
		Int("chars", sb.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("PDF文本提取完成")
	return sb.String(), nil
}
