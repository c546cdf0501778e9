package scoring

import (
	"testing"

	"resume-match-go/internal/config"

	"github.com/stretchr/testify/assert"
)

// TestClassify 阈值下界包含的三档映射
func TestClassify(t *testing.T) {
	c := NewClassifier(config.Default().Scoring)

	cases := []struct {
		score float64
		want  string
	}{
		{100, LabelSuitable},
		{80, LabelSuitable},
		{79.99, LabelMaybeSuitable},
		{50, LabelMaybeSuitable},
		{49.9, LabelNotSuitable},
		{0, LabelNotSuitable},
	}
	for _, cse := range cases {
		assert.Equal(t, cse.want, c.Classify(cse.score), "分数: %v", cse.score)
	}
}
