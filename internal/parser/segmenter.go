package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

var (
	headerTrailRe = regexp.MustCompile(`[:\-\s]+$`)
	headerLeadRe  = regexp.MustCompile(`^\W+`)
)

// maxHeaderLen 超过该长度的行不可能是章节标题，直接当正文处理
const maxHeaderLen = 50

// Segmenter 把清洗后的简历文本切分为章节。
// 切分对每行做标题识别：命中则开启新章节，否则归入当前章节。
// 第一个标题之前的内容归入 header 章节。
type Segmenter struct {
	// MergeRepeats 控制同类章节重复出现时的行为：
	// false（默认）后出现的覆盖先出现的；true 则以空行拼接合并。
	MergeRepeats bool
}

// Segment 执行章节切分，返回章节类型到章节正文的映射，
// 以及按首次出现顺序排列的章节类型列表。
// 空行保留在当前章节内，作为条目边界信息传给下游。
func (s *Segmenter) Segment(text string) (map[types.SectionKind]string, []types.SectionKind) {
	sections := make(map[types.SectionKind]string)
	var order []types.SectionKind
	current := types.SectionHeader
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content == "" {
			return
		}
		if prev, ok := sections[current]; ok {
			if s.MergeRepeats {
				content = prev + "\n\n" + content
			}
		} else {
			order = append(order, current)
		}
		sections[current] = content
	}

	for _, line := range strings.Split(text, "\n") {
		if kind, ok := identifySectionHeader(line); ok {
			flush()
			buf = buf[:0]
			current = kind
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections, order
}

// identifySectionHeader 判断一行是否为章节标题。
// 先去掉尾部的冒号/连字符/空白和前导符号，再小写后与标题模式逐一匹配。
func identifySectionHeader(line string) (types.SectionKind, bool) {
	candidate := headerTrailRe.ReplaceAllString(strings.TrimSpace(line), "")
	candidate = headerLeadRe.ReplaceAllString(candidate, "")
	if candidate == "" || len(candidate) > maxHeaderLen {
		return "", false
	}
	lower := strings.ToLower(candidate)
	for _, kind := range sectionMatchOrder {
		for _, re := range sectionHeaderPatterns[kind] {
			if re.MatchString(lower) {
				return kind, true
			}
		}
	}
	return "", false
}
