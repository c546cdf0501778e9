// Package skills 提供技能词元的规范化与同义词扩展。
// 规范化结果是幂等的：对已规范化的集合再次规范化得到的是它自身的超集且不再增长。
package skills

import (
	"regexp"
	"sort"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// synonymTable 固定的同义词/缩写映射表。
// 扩展只做一跳查表，不做传递闭包；双向等价关系（如 aws 与 amazon web services）
// 需要在表中显式列出两个方向。
var synonymTable = map[string][]string{
	"rest api development":       {"rest", "api", "rest api"},
	"rest api":                   {"rest", "api"},
	"ci cd pipelines":            {"cicd", "ci", "cd", "ci cd"},
	"nosql databases":            {"nosql"},
	"amazon web services":        {"aws"},
	"aws":                        {"amazon web services"},
	"graphql":                    {"graph ql"},
	"microservices architecture": {"microservices"},
}

// NormalizeToken 规范化单个技能词元：
// 小写、去掉括号后缀（如 "Python (>10,000 lines)" -> "python"）、
// 把 / 和 - 折叠为空格、压缩连续空白。
func NormalizeToken(skill string) string {
	base := skill
	if idx := strings.Index(base, "("); idx >= 0 {
		base = base[:idx]
	}
	base = strings.ToLower(strings.TrimSpace(base))
	base = strings.ReplaceAll(base, "/", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(base, " "))
}

// Set 规范化技能集合
type Set map[string]struct{}

// Has 报告集合是否包含指定技能
func (s Set) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Add 向集合添加技能
func (s Set) Add(skill string) {
	s[skill] = struct{}{}
}

// Sorted 返回按字典序排序的切片，保证下游输出确定性
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Intersect 返回与另一个集合的交集
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for skill := range s {
		if other.Has(skill) {
			out.Add(skill)
		}
	}
	return out
}

// Normalize 规范化并扩展一组原始技能字符串。
// 空白项被丢弃；未收录的词元除基础规范化外原样通过，不报错。
func Normalize(rawSkills []string) Set {
	normalized := make(Set, len(rawSkills))
	for _, raw := range rawSkills {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		normalized.Add(NormalizeToken(raw))
	}
	return expandSynonyms(normalized)
}

// expandSynonyms 用同义词表做一跳扩展
func expandSynonyms(in Set) Set {
	expanded := make(Set, len(in))
	for skill := range in {
		expanded.Add(skill)
		for _, syn := range synonymTable[skill] {
			expanded.Add(syn)
		}
	}
	return expanded
}
