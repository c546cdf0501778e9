package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeToken 验证单词元规范化规则
func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Python (>10,000 lines)", "python"},
		{"CI/CD-Pipelines", "ci cd pipelines"},
		{"  REST   API  ", "rest api"},
		{"Node.js", "node.js"},
		{"AWS", "aws"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeToken(c.in), "输入: %q", c.in)
	}
}

// TestNormalizeExpandsSynonyms 验证同义词一跳扩展与双向等价关系
func TestNormalizeExpandsSynonyms(t *testing.T) {
	set := Normalize([]string{"REST API Development"})
	assert.True(t, set.Has("rest api development"))
	assert.True(t, set.Has("rest"))
	assert.True(t, set.Has("api"))
	assert.True(t, set.Has("rest api"))

	// 双向缩写
	assert.True(t, Normalize([]string{"AWS"}).Has("amazon web services"))
	assert.True(t, Normalize([]string{"Amazon Web Services"}).Has("aws"))
}

// TestNormalizeDropsBlanksAndPassesUnknown 空白项丢弃，未收录词元原样通过
func TestNormalizeDropsBlanksAndPassesUnknown(t *testing.T) {
	set := Normalize([]string{"", "   ", "Erlang"})
	assert.Len(t, set, 1)
	assert.True(t, set.Has("erlang"))
}

// TestNormalizeIdempotent 对已规范化的集合再规范化不再增长
func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize([]string{"CI/CD Pipelines", "NoSQL Databases", "AWS", "GraphQL"})
	second := Normalize(first.Sorted())
	assert.Equal(t, first.Sorted(), second.Sorted())
}

// TestSetIntersect 交集运算
func TestSetIntersect(t *testing.T) {
	a := Normalize([]string{"Go", "Docker", "Kafka"})
	b := Normalize([]string{"docker", "kafka", "redis"})
	got := a.Intersect(b)
	assert.Equal(t, []string{"docker", "kafka"}, got.Sorted())
}
