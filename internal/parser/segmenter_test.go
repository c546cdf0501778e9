package parser

import (
	"strings"
	"testing"

	"resume-match-go/internal/types"

	"github.com/stretchr/testify/assert"
)

// TestIdentifySectionHeader 标题识别：修饰符剥离、大小写、长度上限
func TestIdentifySectionHeader(t *testing.T) {
	cases := []struct {
		line string
		kind types.SectionKind
		ok   bool
	}{
		{"SUMMARY", types.SectionSummary, true},
		{"Professional Summary:", types.SectionSummary, true},
		{"• Skills -", types.SectionSkills, true},
		{"WORK EXPERIENCE", types.SectionExperience, true},
		{"Education & Certifications", types.SectionEducation, true},
		{"Key Projects", types.SectionProjects, true},
		{"Awards and Honors", types.SectionAccomplishments, true},
		{"I have ten years of experience", "", false},
		{strings.Repeat("x", 60) + " skills", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		kind, ok := identifySectionHeader(c.line)
		assert.Equal(t, c.ok, ok, "行: %q", c.line)
		if c.ok {
			assert.Equal(t, c.kind, kind, "行: %q", c.line)
		}
	}
}

// TestIdentifySectionHeaderAmbiguous 歧义标题按固定顺序归类
func TestIdentifySectionHeaderAmbiguous(t *testing.T) {
	// qualifications 同时在教育与技能的模式里，应稳定归入教育
	kind, ok := identifySectionHeader("Qualifications")
	assert.True(t, ok)
	assert.Equal(t, types.SectionEducation, kind)
}

// TestSegment 基本切分：header章节、正文归属、检测顺序
func TestSegment(t *testing.T) {
	text := "John Smith\njohn@example.com\n\nSUMMARY\nSeasoned engineer.\n\nSKILLS\nGo, Python\nDocker"

	s := &Segmenter{}
	sections, order := s.Segment(text)

	assert.Equal(t, "John Smith\njohn@example.com", sections[types.SectionHeader])
	assert.Equal(t, "Seasoned engineer.", sections[types.SectionSummary])
	assert.Equal(t, "Go, Python\nDocker", sections[types.SectionSkills])
	assert.Equal(t, []types.SectionKind{
		types.SectionHeader, types.SectionSummary, types.SectionSkills,
	}, order)
}

// TestSegmentRepeatedSections 同类章节重复时的两种策略
func TestSegmentRepeatedSections(t *testing.T) {
	text := "SKILLS\nGo\n\nEXPERIENCE\nEngineer at Acme Inc\n\nSKILLS\nPython"

	// 默认：后者覆盖前者
	s := &Segmenter{}
	sections, order := s.Segment(text)
	assert.Equal(t, "Python", sections[types.SectionSkills])
	// 章节类型在顺序表中只出现一次
	assert.Equal(t, []types.SectionKind{types.SectionSkills, types.SectionExperience}, order)

	// 合并模式：以空行拼接
	merging := &Segmenter{MergeRepeats: true}
	sections, _ = merging.Segment(text)
	assert.Equal(t, "Go\n\nPython", sections[types.SectionSkills])
}

// TestSegmentKeepsBlankLinesInside 章节内部空行保留，作为条目边界传给下游
func TestSegmentKeepsBlankLinesInside(t *testing.T) {
	text := "EXPERIENCE\nEngineer at Acme Inc\n\nManager at Initech LLC"
	s := &Segmenter{}
	sections, _ := s.Segment(text)
	assert.Equal(t, "Engineer at Acme Inc\n\nManager at Initech LLC", sections[types.SectionExperience])
}

// TestSegmentKeepsNonBlankContent 切分不丢正文：任何非空白、非标题的行
// 都落在某个章节的内容里
func TestSegmentKeepsNonBlankContent(t *testing.T) {
	inputs := []string{
		"Jane Doe\njane@example.com\n\nSUMMARY\nSeasoned engineer.\n\nSKILLS\nGo, Python\nDocker\n\n" +
			"EXPERIENCE\nEngineer at Acme Inc\n• Shipped features\n\nEDUCATION\nBachelor of Science, 2015",
		"No headers here\njust free text\nacross several lines",
		"PROJECTS\ncrawler written in Go\n\nCERTIFICATIONS\nCKA\n\nAWARDS\nemployee of the year",
	}
	for _, text := range inputs {
		sections, _ := (&Segmenter{}).Segment(text)
		var contents []string
		for _, content := range sections {
			contents = append(contents, content)
		}
		joined := strings.Join(contents, "\n")
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if _, isHeader := identifySectionHeader(line); isHeader {
				continue
			}
			assert.Contains(t, joined, line, "输入: %q", text)
		}
	}

	// 合并模式下重复章节的内容也不丢失
	merging := &Segmenter{MergeRepeats: true}
	sections, _ := merging.Segment("SKILLS\nGo\n\nEXPERIENCE\nEngineer at Acme Inc\n\nSKILLS\nPython")
	assert.Contains(t, sections[types.SectionSkills], "Go")
	assert.Contains(t, sections[types.SectionSkills], "Python")
}
