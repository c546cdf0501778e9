package parser

import (
	"testing"

	"resume-match-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractExperience 两条经历：日期行开启新条目，职位带上下文扩展
func TestExtractExperience(t *testing.T) {
	sections := map[types.SectionKind]string{
		types.SectionExperience: "Senior Software Engineer at Acme Corp - Seattle, WA\n" +
			"• Built Go microservices\n" +
			"• Led team of 5\n" +
			"Jan 2018 - Mar 2020, Manager at Initech Inc\n" +
			"- Implemented reporting pipeline",
	}

	entries := ExtractExperience(sections, "")
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Software Engineer at Acme Corp", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Seattle, WA", first.Location)
	assert.Empty(t, first.StartDate)
	assert.Empty(t, first.EndDate)
	assert.Equal(t, []string{"Built Go microservices", "Led team of 5"}, first.Description)

	second := entries[1]
	assert.Equal(t, "Manager at Initech Inc", second.Title)
	assert.Equal(t, "Initech Inc", second.Company)
	assert.Empty(t, second.Location)
	assert.Equal(t, "Jan 2018", second.StartDate)
	assert.Equal(t, "Mar 2020", second.EndDate)
	assert.Equal(t, []string{"Implemented reporting pipeline"}, second.Description)
}

// TestExtractExperienceFallback 章节切分未命中时从全文定位经历块
func TestExtractExperienceFallback(t *testing.T) {
	fullText := "Some header\nEXPERIENCE\nJan 2015 - Dec 2016, Analyst at Beta LLC\nEDUCATION\nBS Computer Science"

	entries := ExtractExperience(map[types.SectionKind]string{}, fullText)
	require.Len(t, entries, 1)
	assert.Equal(t, "Analyst at Beta LLC", entries[0].Title)
	assert.Equal(t, "Beta LLC", entries[0].Company)
	assert.Equal(t, "Jan 2015", entries[0].StartDate)
	assert.Equal(t, "Dec 2016", entries[0].EndDate)
}

// TestExtractExperienceDiscardsNoise 既无公司也无职位的块丢弃
func TestExtractExperienceDiscardsNoise(t *testing.T) {
	sections := map[types.SectionKind]string{
		types.SectionExperience: "worked on various things\ndid more things",
	}
	assert.Empty(t, ExtractExperience(sections, ""))
}

// TestExtractExperienceConsecutiveDateBlocks 连续两段各以日期区间开头的条目
// 切分为两条记录，日期与描述互不串扰
func TestExtractExperienceConsecutiveDateBlocks(t *testing.T) {
	sections := map[types.SectionKind]string{
		types.SectionExperience: "Jan 2019 - Dec 2020 Software Engineer at Acme Inc\n" +
			"• Shipped payment features\n" +
			"Mar 2017 - Dec 2018 Data Analyst at Initech LLC\n" +
			"• Analyzed churn data",
	}

	entries := ExtractExperience(sections, "")
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Acme Inc", first.Company)
	assert.Equal(t, "Jan 2019", first.StartDate)
	assert.Equal(t, "Dec 2020", first.EndDate)
	assert.Equal(t, []string{"Shipped payment features"}, first.Description)

	second := entries[1]
	assert.Equal(t, "Initech LLC", second.Company)
	assert.Equal(t, "Mar 2017", second.StartDate)
	assert.Equal(t, "Dec 2018", second.EndDate)
	assert.Equal(t, []string{"Analyzed churn data"}, second.Description)
}

// TestExtractCompanyForms 公司名提取的三条路径
func TestExtractCompanyForms(t *testing.T) {
	// at/@ 形式，连字符前截断
	assert.Equal(t, "Acme Corp", extractCompany("Engineer at Acme Corp - Boston"))
	// at 标记区分大小写：大写 AT 不触发该路径，落到指示词整行模式
	assert.Equal(t, "Engineer AT Acme Corp", extractCompany("Engineer AT Acme Corp - Boston"))
	// 公司指示词整行，去掉地点后缀
	assert.Equal(t, "Globex Corporation", extractCompany("Globex Corporation - New York office"))
	// 占位文本兜底
	assert.Equal(t, "Company Name (Placeholder)", extractCompany("self employed\nbuilt stuff at company name"))
	// 无任何信号
	assert.Empty(t, extractCompany("no signals here"))
}

// TestExtractDateRange 显式区间优先，孤立日期配对Present
func TestExtractDateRange(t *testing.T) {
	start, end := extractDateRange("05/2019 - Present")
	assert.Equal(t, "05/2019", start)
	assert.Equal(t, "Present", end)

	start, end = extractDateRange("Joined Mar 2021\nstill here")
	assert.Equal(t, "Mar 2021", start)
	assert.Equal(t, "Present", end)

	start, end = extractDateRange("no dates at all")
	assert.Empty(t, start)
	assert.Empty(t, end)
}
