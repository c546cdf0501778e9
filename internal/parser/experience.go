package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// 条目原文摘录的长度上限（字符数）
const experienceRawTextLimit = 500

var (
	// 章节切分未命中时的兜底：直接在全文里定位 experience/employment 块
	experienceFallbackRe = regexp.MustCompile(
		`(?is)(?:experience|employment)[:\-\s]*\n(.+?)(?:\n(?:education|skills|certifications)|$)`)

	atCompanyRe       = regexp.MustCompile(`(?:at|@)\s+([A-Z][^\n,]+?)(?:\s*[-–]|\s*\n|$)`)
	companyTrailRe    = regexp.MustCompile(`\s*[-–]\s*.*$`)
	placeholderRe     = regexp.MustCompile(`(?i)Company\s+Name\b`)
	entryLocationRe   = regexp.MustCompile(`[-–]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),?\s*([A-Z]{2})\b`)
	bulletMarkerRe    = regexp.MustCompile(`^\s*[-*]\s+`)
	bulletStripRe     = regexp.MustCompile(`^\s*[•\-*]\s*`)
)

// ExtractExperience 从章节文本（或全文兜底）提取工作经历列表。
// 先按条目边界切块，再逐块解析日期、职位、公司、地点和描述。
// 既无公司也无职位的块视为噪声丢弃。
func ExtractExperience(sections map[types.SectionKind]string, fullText string) []types.Experience {
	text := sections[types.SectionExperience]
	if text == "" {
		if m := experienceFallbackRe.FindStringSubmatch(fullText); m != nil {
			text = strings.TrimSpace(m[1])
		}
	}
	if text == "" {
		return nil
	}

	var out []types.Experience
	for _, block := range splitJobEntries(text) {
		if exp, ok := parseJobEntry(block); ok {
			out = append(out, exp)
		}
	}
	return out
}

// splitJobEntries 把章节文本切成单条经历块。
// 一行满足任一条目起始信号（以日期开头、命中核心职位名模式、命中核心公司
// 指示词）且当前块非空时，开启新块。
func splitJobEntries(text string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			current = append(current, line)
			continue
		}
		if isEntryStart(line) && hasContent(current) {
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

func isEntryStart(line string) bool {
	if entryDateStartRe.MatchString(line) {
		return true
	}
	// 核心职位名模式（管理/技术类）
	for _, re := range jobTitleRes[:5] {
		if re.MatchString(line) {
			return true
		}
	}
	// 核心公司指示词
	for _, re := range companyIndicatorRes[:3] {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func hasContent(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// parseJobEntry 解析单条经历块。返回 ok=false 表示该块既无公司也无职位。
func parseJobEntry(block string) (types.Experience, bool) {
	exp := types.Experience{
		RawText:     truncateRunes(block, experienceRawTextLimit),
		Description: []string{},
	}

	lines := strings.Split(block, "\n")
	firstLine := ""
	if len(lines) > 0 {
		firstLine = strings.TrimSpace(lines[0])
	}

	exp.StartDate, exp.EndDate = extractDateRange(block)
	exp.Title = extractJobTitle(firstLine)
	exp.Company = extractCompany(block)
	exp.Location = extractEntryLocation(firstLine)
	exp.Description = extractBullets(lines)

	if exp.Company == "" && exp.Title == "" {
		return types.Experience{}, false
	}
	return exp, true
}

// extractDateRange 提取起止日期。优先匹配显式区间；没有区间时
// 按模式优先级收集独立日期，取前两个配对，只有一个则以 Present 结尾。
func extractDateRange(block string) (start, end string) {
	if m := dateRangeRe.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	var dates []string
	for _, re := range standaloneDateRes {
		dates = append(dates, re.FindAllString(block, -1)...)
	}
	switch {
	case len(dates) >= 2:
		return dates[0], dates[1]
	case len(dates) == 1:
		return dates[0], "Present"
	}
	return "", ""
}

// extractJobTitle 只在条目首行找职位名，带左右上下文扩展，
// 比如 "Senior Software Engineer" 整体捕获而不止 "Engineer"。
func extractJobTitle(firstLine string) string {
	if firstLine == "" {
		return ""
	}
	for _, re := range jobTitleContextRes {
		if m := re.FindStringSubmatch(firstLine); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractCompany 提取公司名：先找 "at/@ 公司名" 形式，再用公司指示词的
// 整行上下文模式（命中后去掉连字符起的地点后缀），最后识别 "Company Name"
// 占位文本。三者皆空返回空串。
func extractCompany(block string) string {
	if m := atCompanyRe.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, re := range companyLineRes {
		if m := re.FindStringSubmatch(block); m != nil {
			company := strings.TrimSpace(m[1])
			company = strings.TrimSpace(companyTrailRe.ReplaceAllString(company, ""))
			if company != "" {
				return company
			}
		}
	}
	if placeholderRe.MatchString(block) {
		return "Company Name (Placeholder)"
	}
	return ""
}

// extractEntryLocation 从首行的 "- City, ST" 片段提取地点
func extractEntryLocation(firstLine string) string {
	if m := entryLocationRe.FindStringSubmatch(firstLine); m != nil {
		return m[1] + ", " + m[2]
	}
	return ""
}

// extractBullets 收集首行之后以项目符号开头的描述行
func extractBullets(lines []string) []string {
	bullets := []string{}
	if len(lines) <= 1 {
		return bullets
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(strings.TrimSpace(line), "•") && !bulletMarkerRe.MatchString(line) {
			continue
		}
		if item := strings.TrimSpace(bulletStripRe.ReplaceAllString(line, "")); item != "" {
			bullets = append(bullets, item)
		}
	}
	return bullets
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
