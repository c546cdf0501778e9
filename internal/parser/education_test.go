package parser

import (
	"testing"

	"resume-match-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractEducation 学位关键词切块：学校行与学位行分属两条
func TestExtractEducation(t *testing.T) {
	sections := map[types.SectionKind]string{
		types.SectionEducation: "State University - Boston, MA\n" +
			"Bachelor of Science in Computer Science, 2016\n" +
			"GPA: 3.8/4.0, magna cum laude, Dean's List",
	}

	entries := ExtractEducation(sections, "")
	require.Len(t, entries, 2)

	assert.Equal(t, "State University", entries[0].School)
	assert.Empty(t, entries[0].Degree)

	degree := entries[1]
	assert.Equal(t, "Bachelor", degree.Degree)
	assert.Equal(t, "Science in Computer Science", degree.Field)
	assert.Equal(t, "2016", degree.GraduationYear)
	assert.Equal(t, "3.8/4.0", degree.GPA)
	assert.Equal(t, []string{"magna cum laude", "Dean's List"}, degree.Honors)
}

// TestParseEducationEntryProfessionalDegree 单词元职业学位无专业方向
func TestParseEducationEntryProfessionalDegree(t *testing.T) {
	edu, ok := parseEducationEntry("Harvard Business School\nMBA, 2010")
	require.True(t, ok)
	assert.Equal(t, "MBA", edu.Degree)
	assert.Empty(t, edu.Field)
	assert.Equal(t, "Harvard Business School", edu.School)
	assert.Equal(t, "2010", edu.GraduationYear)
}

// TestParseEducationEntryGPAWithoutScale 不带满分刻度的GPA
func TestParseEducationEntryGPAWithoutScale(t *testing.T) {
	edu, ok := parseEducationEntry("Bachelor of Arts, 2011\nGPA: 3.5")
	require.True(t, ok)
	assert.Equal(t, "3.5", edu.GPA)
}

// TestParseEducationEntryPicksLatestYear 多个年份时取最近的作为毕业年份
func TestParseEducationEntryPicksLatestYear(t *testing.T) {
	edu, ok := parseEducationEntry("Master of Arts - History\nAttended 2008 2012")
	require.True(t, ok)
	assert.Equal(t, "Master", edu.Degree)
	assert.Equal(t, "Arts", edu.Field)
	assert.Equal(t, "2012", edu.GraduationYear)
}

// TestParseEducationEntryDiscardsNoise 既无学位也无学校的块丢弃
func TestParseEducationEntryDiscardsNoise(t *testing.T) {
	_, ok := parseEducationEntry("relevant coursework and other notes")
	assert.False(t, ok)
}
