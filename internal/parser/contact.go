package parser

import (
	"fmt"
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// 联系方式只在文本头部扫描，避免把推荐人或公司邮箱误认成候选人信息
const contactScanLimit = 1000

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

	// 电话模式按置信度排列：带国家码 > 括号区号 > 纯数字分隔
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	}

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/([A-Za-z0-9\-_%]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9\-_]+)`)
	// 个人网站要求带协议前缀，裸 www. 形式不算
	websiteRe = regexp.MustCompile(`(?i)\bhttps?://[^\s,;]+`)

	locationRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),?\s*([A-Z]{2})\b`)

	nameSkipRe = regexp.MustCompile(`@|\d{3}[-.\s]\d{3}|http|www\.`)
	nameWordRe = regexp.MustCompile(`^[A-Za-z'\-.]+$`)
	digitsRe   = regexp.MustCompile(`\D`)
)

// ExtractContact 从清洗后的文本中提取联系方式。
// 所有字段尽力而为，提取不到就留空，不产生错误。
func ExtractContact(text string) types.ContactInfo {
	head := text
	if runes := []rune(head); len(runes) > contactScanLimit {
		head = string(runes[:contactScanLimit])
	}

	contact := types.ContactInfo{}
	if m := emailRe.FindString(head); m != "" {
		contact.Email = m
	}
	contact.Phone = extractPhone(head)
	if m := linkedinRe.FindStringSubmatch(head); m != nil {
		contact.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(head); m != nil {
		contact.GitHub = "github.com/" + m[1]
	}
	// 个人网站排除已识别为linkedin/github的链接
	for _, url := range websiteRe.FindAllString(head, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		contact.Website = strings.TrimRight(url, "/")
		break
	}
	contact.Name = extractName(head)
	if m := locationRe.FindStringSubmatch(head); m != nil {
		contact.Location = strings.TrimSuffix(m[1], ",") + ", " + m[2]
	}
	return contact
}

// extractPhone 依次尝试电话模式，跳过纯年份误报，
// 10位号码格式化为 (XXX) XXX-XXXX，11位去掉前导1，其余保留原样。
func extractPhone(head string) string {
	for _, re := range phoneRes {
		for _, m := range re.FindAllString(head, -1) {
			digits := digitsRe.ReplaceAllString(m, "")
			if len(digits) == 4 {
				// 形如 "2015" 的裸年份
				continue
			}
			if len(digits) == 11 && strings.HasPrefix(digits, "1") {
				digits = digits[1:]
			}
			if len(digits) == 10 {
				return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
			}
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractName 在头部前10行里找姓名：
// 2-4个词、每词首字母大写（或形如 "A." 的缩写）、不含联系方式痕迹。
func extractName(head string) string {
	lines := strings.Split(head, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || nameSkipRe.MatchString(line) {
			continue
		}
		if _, isHeader := identifySectionHeader(line); isHeader {
			continue
		}
		if containsBlacklisted(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allNameWords(words) {
			return line
		}
	}
	return ""
}

func containsBlacklisted(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range nameBlacklist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func allNameWords(words []string) bool {
	for _, w := range words {
		if !nameWordRe.MatchString(w) {
			return false
		}
		// "A." 形式的中间名缩写
		if len(w) <= 2 && strings.HasSuffix(w, ".") {
			continue
		}
		first := rune(w[0])
		if first < 'A' || first > 'Z' {
			return false
		}
	}
	return true
}
