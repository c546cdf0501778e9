package scoring

import "resume-match-go/internal/config"

// 分类标签
const (
	LabelSuitable      = "Suitable"
	LabelMaybeSuitable = "Maybe Suitable"
	LabelNotSuitable   = "Not Suitable"
)

// Classifier 按阈值把0-100的综合分映射到三档标签。
// 阈值下界包含：分数恰好等于阈值时归入较高档。
type Classifier struct {
	SuitableThreshold float64
	MaybeThreshold    float64
}

// NewClassifier 从评分配置创建分类器
func NewClassifier(cfg config.ScoringConfig) *Classifier {
	return &Classifier{
		SuitableThreshold: cfg.SuitableThreshold,
		MaybeThreshold:    cfg.MaybeThreshold,
	}
}

// Classify 返回分数对应的标签
func (c *Classifier) Classify(score float64) string {
	switch {
	case score >= c.SuitableThreshold:
		return LabelSuitable
	case score >= c.MaybeThreshold:
		return LabelMaybeSuitable
	default:
		return LabelNotSuitable
	}
}
