package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/model"
	einoschema "github.com/cloudwego/eino/schema"
)

// LLMExtractor 基于大模型的结构化提取器。
// 把简历全文交给LLM，要求按固定JSON格式输出结构化字段；
// 模型输出形态不稳定（技能可能是扁平列表、经历可能是纯字符串），
// 由 types 包的 Flex* 联合类型在反序列化时吸收。
// 任何失败都降级为 ParsingSuccess=false 的记录并回填原文，不向调用方报错。
type LLMExtractor struct {
	llmModel       model.BaseChatModel
	promptTemplate string
}

// LLMExtractorOption LLM提取器的配置选项
type LLMExtractorOption func(*LLMExtractor)

// WithExtractorPromptTemplate 设置自定义提示词模板，
// 模板需包含一个 %s 占位符用于填充简历文本
func WithExtractorPromptTemplate(template string) LLMExtractorOption {
	return func(e *LLMExtractor) {
		e.promptTemplate = template
	}
}

// NewLLMExtractor 创建LLM提取器实例
func NewLLMExtractor(llmModel model.BaseChatModel, options ...LLMExtractorOption) *LLMExtractor {
	extractor := &LLMExtractor{
		llmModel: llmModel,
	}
	extractor.generatePromptTemplate()
	for _, opt := range options {
		opt(extractor)
	}
	return extractor
}

func (e *LLMExtractor) generatePromptTemplate() {
	e.promptTemplate = `你是一位专业的简历信息抽取助手。请从下面的【简历文本】中抽取结构化信息，严格按照指定的JSON格式输出。

**输出JSON格式：**
{
  "contact": {"name": "", "email": "", "phone": "", "linkedin": "", "github": "", "location": "", "website": ""},
  "summary": "个人总结，不超过500字符",
  "skills": {"technical": [], "soft": [], "languages": [], "tools": [], "databases": [], "all": []},
  "experience": [{"company": "", "title": "", "location": "", "start_date": "", "end_date": "", "description": ["职责或成果条目"]}],
  "education": [{"degree": "", "field": "", "school": "", "graduation_year": "", "gpa": "", "honors": []}],
  "projects": [{"name": "", "technologies": []}]
}

**抽取规则：**
1. 找不到的字段留空字符串或空数组，禁止编造。
2. 日期保留简历原文写法（如 "Jan 2020"、"03/2019"、"Present"）。
3. 技能按类别归桶，"all" 放全部技能的并集。
4. 完整输出必须是一个合法的JSON对象，所有字段名和字符串值使用双引号。
5. 禁止在JSON结构之外输出任何额外文本、解释或Markdown标记。

【简历文本】:
"""
%s
"""

请输出JSON结果。`
}

// Extract 执行LLM提取。模型调用失败或JSON不可解析时返回降级记录。
func (e *LLMExtractor) Extract(ctx context.Context, text string) *types.ResumeRecord {
	record, err := e.extract(ctx, text)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("LLM简历提取失败，返回降级记录")
		failed := failedRecord(err.Error())
		failed.RawText = text
		return failed
	}
	return record
}

func (e *LLMExtractor) extract(ctx context.Context, text string) (*types.ResumeRecord, error) {
	if e.llmModel == nil {
		return nil, fmt.Errorf("LLMExtractor: llmModel未初始化")
	}

	systemMsg := einoschema.SystemMessage("你是一位精确的简历信息抽取助手，只输出合法JSON。")
	userMsg := einoschema.UserMessage(fmt.Sprintf(e.promptTemplate, text))

	response, err := e.llmModel.Generate(ctx, []*einoschema.Message{systemMsg, userMsg})
	if err != nil {
		return nil, fmt.Errorf("LLMExtractor: 模型调用失败: %w", err)
	}
	if response == nil || response.Content == "" {
		return nil, fmt.Errorf("LLMExtractor: 模型返回空响应")
	}

	processed := strings.TrimPrefix(response.Content, "\uFEFF")
	jsonStr := extractJSONBlock(processed)
	if jsonStr == "" {
		return nil, fmt.Errorf("LLMExtractor: 响应中未找到JSON对象")
	}
	if !utf8.ValidString(jsonStr) {
		jsonStr = strings.ToValidUTF8(jsonStr, "")
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonStr), &record); err != nil {
		// 解析失败时尝试修复字符串内部未转义的引号再试一次
		repaired := repairJSONQuotes(jsonStr)
		if jsonErr := json.Unmarshal([]byte(repaired), &record); jsonErr != nil {
			return nil, fmt.Errorf("LLMExtractor: JSON反序列化失败: %w", err)
		}
	}

	record.Metadata.ParsingSuccess = true
	if record.Metadata.SectionsDetected == nil {
		record.Metadata.SectionsDetected = []types.SectionKind{}
	}
	return &record, nil
}

// extractJSONBlock 用花括号配对从文本中提取第一个完整的JSON对象
func extractJSONBlock(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}
	level := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// repairJSONQuotes 把字符串字面量内部未转义的双引号改写为 \"。
// 通过看引号后第一个非空白字符是否为 : , ] } 判断它是不是真正的字符串结束。
func repairJSONQuotes(src string) string {
	var b strings.Builder
	inStr := false
	escaped := false

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '"' && !escaped:
			if !inStr {
				inStr = true
				b.WriteByte(c)
				break
			}
			j := i + 1
			for j < len(src) && (src[j] == ' ' || src[j] == '\t' || src[j] == '\n' || src[j] == '\r') {
				j++
			}
			if j < len(src) && (src[j] == ':' || src[j] == ',' || src[j] == ']' || src[j] == '}') {
				inStr = false
				b.WriteByte(c)
			} else {
				b.WriteString(`\"`)
			}
		case c == '\\' && !escaped:
			escaped = true
			b.WriteByte(c)
			continue
		default:
			b.WriteByte(c)
		}
		escaped = false
	}
	return b.String()
}
