package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractSkills 目录命中、类别归桶与多写法概念归一
func TestExtractSkills(t *testing.T) {
	text := "Python, Django, PostgreSQL, Docker, RESTful APIs, CI-CD, leadership and communication skills."

	skills := ExtractSkills(text)
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL", "Docker", "REST", "CI/CD", "Leadership", "Communication"}, skills["all"])
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL", "Docker", "REST", "CI/CD"}, skills["technical"])
	assert.Equal(t, []string{"Leadership", "Communication"}, skills["soft"])
	assert.Equal(t, []string{"Python"}, skills["languages"])
	// frameworks并入tools
	assert.Equal(t, []string{"Django", "Docker"}, skills["tools"])
	assert.Equal(t, []string{"PostgreSQL"}, skills["databases"])
}

// TestExtractSkillsWholeWord 整词匹配：PostgreSQL里不应识别出SQL
func TestExtractSkillsWholeWord(t *testing.T) {
	skills := ExtractSkills("experience with PostgreSQL only")
	assert.NotContains(t, skills["languages"], "SQL")
	assert.Contains(t, skills["databases"], "PostgreSQL")

	// 独立出现时才算
	skills = ExtractSkills("SQL and PostgreSQL")
	assert.Contains(t, skills["languages"], "SQL")
}

// TestExtractSkillsEmptyText 空文本返回全部空桶
func TestExtractSkillsEmptyText(t *testing.T) {
	skills := ExtractSkills("")
	for _, bucket := range []string{"all", "technical", "soft", "languages", "tools", "databases"} {
		assert.Empty(t, skills[bucket], "桶: %s", bucket)
	}
	assert.Len(t, skills, 6)
}
