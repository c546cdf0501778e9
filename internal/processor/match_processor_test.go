package processor

import (
	"context"
	"testing"

	"resume-match-go/internal/config"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEmbedder 测试用向量化器：所有文本映射到同一向量
type fixedEmbedder struct{}

func (fixedEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = []float64{1, 0}
	}
	return out, nil
}

// stubExtractor 测试用提取器：记录收到的文本，返回预置记录
type stubExtractor struct {
	got    string
	record *types.ResumeRecord
}

func (s *stubExtractor) Extract(ctx context.Context, text string) *types.ResumeRecord {
	s.got = text
	return s.record
}

func denseOnlyDefault() *config.Config {
	cfg := config.Default()
	cfg.Scoring.DenseWeight = 1
	cfg.Scoring.LexicalWeight = 0
	return cfg
}

// TestExtractEngineSelection 引擎选择：默认、显式、未注册
func TestExtractEngineSelection(t *testing.T) {
	p := NewMatchProcessor(config.Default(), nil)

	record, err := p.Extract(context.Background(), "John Smith\njohn@example.com", "")
	require.NoError(t, err)
	assert.True(t, record.Metadata.ParsingSuccess)

	_, err = p.Extract(context.Background(), "text", "nonexistent")
	assert.Error(t, err)
}

// TestExtractDefaultEngineFallback 配置的默认引擎未注册时回退到启发式
func TestExtractDefaultEngineFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Parser.Engine = EngineLLM

	p := NewMatchProcessor(cfg, nil)
	record, err := p.Extract(context.Background(), "John Smith", "")
	require.NoError(t, err)
	assert.True(t, record.Metadata.ParsingSuccess)
}

// TestExtractTruncatesLongInput 超长输入按配置截断后送入引擎
func TestExtractTruncatesLongInput(t *testing.T) {
	cfg := config.Default()
	cfg.Parser.MaxResumeLength = 5
	stub := &stubExtractor{record: &types.ResumeRecord{}}

	p := NewMatchProcessor(cfg, nil, WithExtractor("stub", stub))
	_, err := p.Extract(context.Background(), "abcdefghij", "stub")
	require.NoError(t, err)
	assert.Equal(t, "abcde", stub.got)
}

// TestMatch 完整流水线：提取、语义、规则、综合分与标签
func TestMatch(t *testing.T) {
	p := NewMatchProcessor(denseOnlyDefault(), fixedEmbedder{})
	job := types.JobDescription{Title: "Go Developer", RequiredSkills: []string{"Go", "Docker"}}

	result, resume, err := p.Match(context.Background(), "Resume of John\nSKILLS\nGo, Docker", "", job)
	require.NoError(t, err)
	require.NotNil(t, resume)

	// 相似度1、覆盖率1 → 语义分100；规则分 = 2×10
	assert.InDelta(t, 1.0, result.SemanticSimilarity, 1e-12)
	assert.InDelta(t, 1.0, result.SkillCoverage, 1e-12)
	assert.InDelta(t, 100.0, result.SemanticScore, 1e-9)
	assert.Equal(t, 20.0, result.RuleScore)
	assert.InDelta(t, 60.0, result.CompositeScore, 1e-9)
	assert.Equal(t, scoring.LabelMaybeSuitable, result.Label)
	assert.NotEmpty(t, result.MatchID)
	assert.Equal(t, []string{"docker", "go"}, result.MatchedRequired)
	assert.Empty(t, result.MissingRequired)
}

// TestMatchParsed 跳过提取，直接对结构化记录匹配
func TestMatchParsed(t *testing.T) {
	p := NewMatchProcessor(denseOnlyDefault(), fixedEmbedder{})
	job := types.JobDescription{Title: "Go Developer", RequiredSkills: []string{"Go"}}
	resume := &types.ResumeRecord{Skills: types.FlexSkills{Flat: []string{"Go"}}}

	result, err := p.MatchParsed(context.Background(), resume, job)
	require.NoError(t, err)
	// 语义100、规则10 → 综合55
	assert.InDelta(t, 55.0, result.CompositeScore, 1e-9)
	assert.Equal(t, scoring.LabelMaybeSuitable, result.Label)
}

// TestMatchWithoutEmbedder 未配置Embedder时匹配报错，提取不受影响
func TestMatchWithoutEmbedder(t *testing.T) {
	p := NewMatchProcessor(config.Default(), nil)

	_, _, err := p.Match(context.Background(), "any text", "", types.JobDescription{Title: "Go Developer"})
	assert.Error(t, err)

	_, err = p.Extract(context.Background(), "any text", "")
	assert.NoError(t, err)
}
