package matcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize 小写化、停用词过滤、一元加二元词组
func TestTokenize(t *testing.T) {
	terms := tokenize("Go Developer with Go experience")
	assert.Equal(t, []string{
		"go", "developer", "go", "experience",
		"go developer", "developer go", "go experience",
	}, terms)
}

// TestTFIDFFitAndTransform 单文档语料的词表、idf与归一化向量
func TestTFIDFFitAndTransform(t *testing.T) {
	v := NewTFIDFVectorizer(0)
	v.Fit([]string{"go developer with go experience"})

	// 3个一元词 + 3个二元词组，停用词不进词表
	require.Len(t, v.vocabulary, 6)
	assert.Contains(t, v.vocabulary, "go developer")
	assert.NotContains(t, v.vocabulary, "with")

	// 单文档语料里所有词 df=1，平滑idf = ln(2/2)+1 = 1
	for i, idf := range v.idf {
		assert.InDelta(t, 1.0, idf, 1e-12, "维度: %d", i)
	}

	// 向量L2归一化
	vec := v.Transform("go developer")
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-12)

	// 词表外的文档得到零向量
	assert.Equal(t, make([]float64, 6), v.Transform("ruby rails"))
}

// TestTFIDFMaxFeatures 词表超限时按词频截断，同频按字典序
func TestTFIDFMaxFeatures(t *testing.T) {
	v := NewTFIDFVectorizer(2)
	v.Fit([]string{"go developer with go experience"})

	require.Len(t, v.vocabulary, 2)
	// go 词频最高必入选；剩余同频词里 developer 字典序最小
	assert.Contains(t, v.vocabulary, "go")
	assert.Contains(t, v.vocabulary, "developer")
}

// TestCosine 余弦相似度的边界行为
func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	// 长度不一致或零向量都返回0
	assert.Zero(t, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, Cosine(nil, nil))
}
