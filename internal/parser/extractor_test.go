package parser

import (
	"context"
	"testing"

	"resume-match-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeuristicExtract 完整流水线：清洗、切分、各路提取、元数据
func TestHeuristicExtract(t *testing.T) {
	text := "John Smith\njohn@example.com\n\n" +
		"SUMMARY\nBackend engineer with Go experience.\n\n" +
		"SKILLS\nPython, Docker\n\n" +
		"EXPERIENCE\nJan 2019 - Present, Senior Engineer at Acme Inc\n• Built APIs\n\n" +
		"EDUCATION\nBachelor of Science in Biology, 2015"

	record := NewHeuristicExtractor(false).Extract(context.Background(), text)
	require.NotNil(t, record)

	assert.Equal(t, "John Smith", record.Contact.Name)
	assert.Equal(t, "john@example.com", record.Contact.Email)
	assert.Equal(t, "Backend engineer with Go experience.", record.Summary)

	// 技能在整份文本上识别，不限于技能章节
	assert.Equal(t, []string{"Python", "Go"}, record.Skills.Categories["languages"])
	assert.Contains(t, record.Skills.Categories["tools"], "Docker")

	require.Len(t, record.Experience, 1)
	exp := record.Experience[0].Entry
	require.NotNil(t, exp)
	assert.Equal(t, "Acme Inc", exp.Company)
	assert.Equal(t, "Jan 2019", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)

	require.Len(t, record.Education, 1)
	edu := record.Education[0].Entry
	require.NotNil(t, edu)
	assert.Equal(t, "Bachelor", edu.Degree)
	assert.Equal(t, "2015", edu.GraduationYear)

	assert.True(t, record.Metadata.ParsingSuccess)
	assert.Equal(t, []types.SectionKind{
		types.SectionHeader, types.SectionSummary, types.SectionSkills,
		types.SectionExperience, types.SectionEducation,
	}, record.Metadata.SectionsDetected)
}

// TestHeuristicExtractEmptyInput 空输入也返回可消费的记录
func TestHeuristicExtractEmptyInput(t *testing.T) {
	record := NewHeuristicExtractor(false).Extract(context.Background(), "")
	require.NotNil(t, record)
	assert.True(t, record.Metadata.ParsingSuccess)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Contact.Email)
}
