package matcher

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"resume-match-go/internal/config"
	"resume-match-go/internal/skills"
	"resume-match-go/internal/types"

	"github.com/cloudwego/eino/components/embedding"
)

// SemanticMatcher 计算单个岗位与多份简历的语义匹配。
// 一个实例绑定一个岗位：岗位向量与TF-IDF词表在首次使用时构建并缓存，
// 同岗位批量匹配多份简历时岗位侧只计算一次。
// 缓存有互斥锁保护，可并发对多份简历调用。
type SemanticMatcher struct {
	job      types.JobDescription
	embedder embedding.Embedder
	cfg      config.ScoringConfig

	mu           sync.Mutex
	jobEmbedding []float64
	vectorizer   *TFIDFVectorizer
	jobLexical   []float64
}

// NewSemanticMatcher 创建绑定指定岗位的匹配器
func NewSemanticMatcher(job types.JobDescription, embedder embedding.Embedder, cfg config.ScoringConfig) *SemanticMatcher {
	return &SemanticMatcher{
		job:      job,
		embedder: embedder,
		cfg:      cfg,
	}
}

// buildJobText 岗位侧文本：标题、描述、必需技能、优先技能拼接
func (m *SemanticMatcher) buildJobText() string {
	parts := []string{
		m.job.Title,
		m.job.Description,
		strings.Join(m.job.RequiredSkills, " "),
		strings.Join(m.job.PreferredSkills, " "),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// buildResumeText 简历侧文本：规范化技能（排序保证确定性）加经历描述
func buildResumeText(resume *types.ResumeRecord) string {
	skillText := strings.Join(aggregateSkills(resume).Sorted(), " ")

	var descParts []string
	for _, exp := range resume.Experience {
		if text := exp.DescriptionText(); text != "" {
			descParts = append(descParts, text)
		}
	}
	for _, exp := range resume.WorkExperience {
		if text := exp.DescriptionText(); text != "" {
			descParts = append(descParts, text)
		}
	}
	return strings.TrimSpace(skillText + " " + strings.Join(descParts, " "))
}

// aggregateSkills 聚合 skills 与 technical_skills 两个字段并做规范化
func aggregateSkills(resume *types.ResumeRecord) skills.Set {
	var raw []string
	raw = append(raw, resume.Skills.Tokens()...)
	raw = append(raw, resume.TechnicalSkills.Tokens()...)
	return skills.Normalize(raw)
}

// ensureJobCaches 惰性构建岗位向量与TF-IDF词表
func (m *SemanticMatcher) ensureJobCaches(ctx context.Context) error {
	if m.embedder == nil {
		return fmt.Errorf("语义匹配不可用：未配置Embedder")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	jobText := m.buildJobText()
	if m.vectorizer == nil {
		v := NewTFIDFVectorizer(m.cfg.TFIDFMaxFeatures)
		v.Fit([]string{jobText})
		m.vectorizer = v
		m.jobLexical = v.Transform(jobText)
	}
	if m.jobEmbedding == nil {
		vecs, err := m.embedder.EmbedStrings(ctx, []string{jobText})
		if err != nil {
			return fmt.Errorf("岗位文本向量化失败: %w", err)
		}
		if len(vecs) == 0 {
			return fmt.Errorf("岗位文本向量化返回空结果")
		}
		m.jobEmbedding = vecs[0]
	}
	return nil
}

// Similarity 计算岗位与简历的语义相似度，结果在[0,1]。
// 稠密向量相似度与词法相似度按配置权重混合。
func (m *SemanticMatcher) Similarity(ctx context.Context, resume *types.ResumeRecord) (float64, error) {
	if err := m.ensureJobCaches(ctx); err != nil {
		return 0, err
	}

	resumeText := buildResumeText(resume)
	vecs, err := m.embedder.EmbedStrings(ctx, []string{resumeText})
	if err != nil {
		return 0, fmt.Errorf("简历文本向量化失败: %w", err)
	}
	if len(vecs) == 0 {
		return 0, fmt.Errorf("简历文本向量化返回空结果")
	}
	denseSim := Cosine(m.jobEmbedding, vecs[0])

	m.mu.Lock()
	lexicalSim := Cosine(m.jobLexical, m.vectorizer.Transform(resumeText))
	m.mu.Unlock()

	blended := m.cfg.DenseWeight*denseSim + m.cfg.LexicalWeight*lexicalSim
	return clamp(blended, 0, 1), nil
}

// SkillCoverage 计算必需技能覆盖率：两侧都经过规范化与同义词扩展后取交集。
// 必需技能为空时返回0，不视为错误。
func (m *SemanticMatcher) SkillCoverage(resume *types.ResumeRecord) float64 {
	required := skills.Normalize(m.job.RequiredSkills)
	if len(required) == 0 {
		return 0
	}
	matched := required.Intersect(aggregateSkills(resume))
	return float64(len(matched)) / float64(len(required))
}

// CompositeScore 语义综合分：相似度与覆盖率加权后放大到[0,100]。
// 覆盖率或相似度单独提高时综合分单调不降。
func (m *SemanticMatcher) CompositeScore(ctx context.Context, resume *types.ResumeRecord) (score, similarity, coverage float64, err error) {
	similarity, err = m.Similarity(ctx, resume)
	if err != nil {
		return 0, 0, 0, err
	}
	coverage = m.SkillCoverage(resume)
	score = clamp((m.cfg.SimilarityWeight*similarity+m.cfg.CoverageWeight*coverage)*100, 0, 100)
	return score, similarity, coverage, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
