package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// 教育条目原文摘录的长度上限（字符数）
const educationRawTextLimit = 300

var (
	educationFallbackRe = regexp.MustCompile(
		`(?is)education[:\-\s]*\n(.+?)(?:\n(?:experience|skills|certifications)|$)`)
	schoolTrailRe = regexp.MustCompile(`\s*[-–].*$`)
)

// ExtractEducation 从章节文本（或全文兜底）提取教育经历列表。
// 按学位关键词切块后逐块解析学位、专业、学校、毕业年份、GPA与荣誉。
// 既无学位也无学校的块丢弃。
func ExtractEducation(sections map[types.SectionKind]string, fullText string) []types.Education {
	text := sections[types.SectionEducation]
	if text == "" {
		if m := educationFallbackRe.FindStringSubmatch(fullText); m != nil {
			text = strings.TrimSpace(m[1])
		}
	}
	if text == "" {
		return nil
	}

	var out []types.Education
	for _, block := range splitEducationEntries(text) {
		if edu, ok := parseEducationEntry(block); ok {
			out = append(out, edu)
		}
	}
	return out
}

// splitEducationEntries 在出现学位关键词的行处开启新块
func splitEducationEntries(text string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			current = append(current, line)
			continue
		}
		if degreeKeywordRe.MatchString(line) && hasContent(current) {
			blocks = append(blocks, strings.TrimSpace(strings.Join(current, "\n")))
			current = current[:0]
		}
		current = append(current, line)
	}
	if hasContent(current) {
		blocks = append(blocks, strings.TrimSpace(strings.Join(current, "\n")))
	}
	return blocks
}

// parseEducationEntry 解析单条教育块。返回 ok=false 表示该块既无学位也无学校。
func parseEducationEntry(block string) (types.Education, bool) {
	edu := types.Education{
		RawText: truncateRunes(block, educationRawTextLimit),
		Honors:  []string{},
	}

	// 学位族按优先级匹配，第一个命中者生效
	for _, dp := range degreePatterns {
		m := dp.re.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		edu.Degree = strings.TrimSpace(m[1])
		if dp.hasField && len(m) > 2 {
			edu.Field = strings.TrimSpace(m[2])
		}
		break
	}

	if m := schoolRe.FindStringSubmatch(block); m != nil {
		edu.School = strings.TrimSpace(schoolTrailRe.ReplaceAllString(m[1], ""))
	}

	// 毕业年份取条目中字典序最大的年份，多段经历写在一块时偏向最近的
	if years := gradYearRe.FindAllString(block, -1); len(years) > 0 {
		maxYear := years[0]
		for _, y := range years[1:] {
			if y > maxYear {
				maxYear = y
			}
		}
		edu.GraduationYear = maxYear
	}

	if m := gpaRe.FindStringSubmatch(block); m != nil {
		edu.GPA = m[1]
		if m[2] != "" {
			edu.GPA = m[1] + "/" + m[2]
		}
	}

	// 荣誉按模式顺序追加，不去重
	for _, re := range honorsRes {
		for _, h := range re.FindAllString(block, -1) {
			edu.Honors = append(edu.Honors, strings.TrimSpace(h))
		}
	}

	if edu.Degree == "" && edu.School == "" {
		return types.Education{}, false
	}
	return edu, true
}
