// Package processor 组装提取、语义匹配、规则评分三路组件，
// 对外提供完整的简历匹配流水线。
package processor

import (
	"context"
	"fmt"
	"time"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/matcher"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/gofrs/uuid/v5"
)

// 提取引擎名
const (
	EngineHeuristic = "heuristic"
	EngineLLM       = "llm"
)

// MatchProcessor 简历匹配处理器。
// 持有已注册的提取引擎和无状态的评分组件；语义匹配器因绑定岗位，
// 按请求构造。
type MatchProcessor struct {
	extractors    map[string]parser.Extractor
	defaultEngine string
	embedder      embedding.Embedder
	scorer        *scoring.RuleBasedScorer
	classifier    *scoring.Classifier
	cfg           *config.Config
}

// MatchProcessorOption 处理器选项
type MatchProcessorOption func(*MatchProcessor)

// WithExtractor 注册指定名字的提取引擎
func WithExtractor(name string, extractor parser.Extractor) MatchProcessorOption {
	return func(p *MatchProcessor) {
		p.extractors[name] = extractor
	}
}

// NewMatchProcessor 创建匹配处理器。默认注册启发式引擎，
// LLM引擎由上层按配置通过 WithExtractor 注入。
func NewMatchProcessor(cfg *config.Config, embedder embedding.Embedder, options ...MatchProcessorOption) *MatchProcessor {
	p := &MatchProcessor{
		extractors: map[string]parser.Extractor{
			EngineHeuristic: parser.NewHeuristicExtractor(cfg.Parser.MergeRepeatedSections),
		},
		defaultEngine: cfg.Parser.Engine,
		embedder:      embedder,
		scorer:        scoring.NewRuleBasedScorer(cfg.Scoring),
		classifier:    scoring.NewClassifier(cfg.Scoring),
		cfg:           cfg,
	}
	for _, opt := range options {
		opt(p)
	}
	if _, ok := p.extractors[p.defaultEngine]; !ok {
		p.defaultEngine = EngineHeuristic
	}
	return p
}

// Extract 用指定引擎提取简历结构。engine 为空时使用默认引擎；
// 指定了未注册的引擎时报错。输入超长时截断到配置的上限。
func (p *MatchProcessor) Extract(ctx context.Context, text, engine string) (*types.ResumeRecord, error) {
	if engine == "" {
		engine = p.defaultEngine
	}
	extractor, ok := p.extractors[engine]
	if !ok {
		return nil, fmt.Errorf("未注册的提取引擎: %q", engine)
	}

	if maxLen := p.cfg.Parser.MaxResumeLength; maxLen > 0 {
		if runes := []rune(text); len(runes) > maxLen {
			logger.Ctx(ctx).Debug().
				Int("original", len(runes)).
				Int("truncated", maxLen).
				Msg("简历文本超长，截断后再提取")
			text = string(runes[:maxLen])
		}
	}
	return extractor.Extract(ctx, text), nil
}

// Match 执行完整匹配流水线：提取 -> 语义匹配 -> 规则评分 -> 综合分 -> 分类。
// 提取降级（ParsingSuccess=false）不中断流水线，降级记录照常评分。
func (p *MatchProcessor) Match(ctx context.Context, text, engine string, job types.JobDescription) (*types.MatchResult, *types.ResumeRecord, error) {
	start := time.Now()

	resume, err := p.Extract(ctx, text, engine)
	if err != nil {
		return nil, nil, err
	}

	sem := matcher.NewSemanticMatcher(job, p.embedder, p.cfg.Scoring)
	semanticScore, similarity, coverage, err := sem.CompositeScore(ctx, resume)
	if err != nil {
		return nil, nil, fmt.Errorf("语义匹配失败: %w", err)
	}

	ruleScore, breakdown, matched, missing := p.scorer.Score(resume, job)

	composite := p.cfg.Scoring.SemanticWeight*semanticScore + p.cfg.Scoring.RuleWeight*ruleScore
	label := p.classifier.Classify(composite)

	matchID := ""
	if id, err := uuid.NewV4(); err == nil {
		matchID = id.String()
	}

	logger.Ctx(ctx).Info().
		Str("match_id", matchID).
		Str("label", label).
		Float64("composite", composite).
		Float64("semantic", semanticScore).
		Float64("rule", ruleScore).
		Dur("elapsed", time.Since(start)).
		Msg("简历匹配完成")

	return &types.MatchResult{
		MatchID:            matchID,
		Label:              label,
		CompositeScore:     composite,
		SemanticSimilarity: similarity,
		SkillCoverage:      coverage,
		SemanticScore:      semanticScore,
		RuleScore:          ruleScore,
		Breakdown:          breakdown,
		MatchedRequired:    matched,
		MissingRequired:    missing,
	}, resume, nil
}

// MatchParsed 对已提取的简历记录执行匹配（跳过提取步骤）。
// 供调用方自带结构化简历的场景使用。
func (p *MatchProcessor) MatchParsed(ctx context.Context, resume *types.ResumeRecord, job types.JobDescription) (*types.MatchResult, error) {
	sem := matcher.NewSemanticMatcher(job, p.embedder, p.cfg.Scoring)
	semanticScore, similarity, coverage, err := sem.CompositeScore(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("语义匹配失败: %w", err)
	}

	ruleScore, breakdown, matched, missing := p.scorer.Score(resume, job)
	composite := p.cfg.Scoring.SemanticWeight*semanticScore + p.cfg.Scoring.RuleWeight*ruleScore

	matchID := ""
	if id, err := uuid.NewV4(); err == nil {
		matchID = id.String()
	}

	return &types.MatchResult{
		MatchID:            matchID,
		Label:              p.classifier.Classify(composite),
		CompositeScore:     composite,
		SemanticSimilarity: similarity,
		SkillCoverage:      coverage,
		SemanticScore:      semanticScore,
		RuleScore:          ruleScore,
		Breakdown:          breakdown,
		MatchedRequired:    matched,
		MissingRequired:    missing,
	}, nil
}
