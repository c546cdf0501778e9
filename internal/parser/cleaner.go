package parser

import (
	"regexp"
	"strings"
)

var (
	bulletGlyphRe  = regexp.MustCompile(`[•·▪▫◦‣⁃➤→]`)
	inlineSpacesRe = regexp.MustCompile(`[ \t]+`)
	excessBlanksRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText 清洗原始简历文本：统一换行符、规范化项目符号、
// 压缩行内空白、折叠连续空行并去掉每行首尾空白。
// 清洗是解析流水线的第一步，后续所有提取都基于清洗后的文本。
func CleanText(text string) string {
	cleaned := strings.ReplaceAll(text, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	cleaned = bulletGlyphRe.ReplaceAllString(cleaned, "•")
	cleaned = inlineSpacesRe.ReplaceAllString(cleaned, " ")

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	cleaned = strings.Join(lines, "\n")

	cleaned = excessBlanksRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
