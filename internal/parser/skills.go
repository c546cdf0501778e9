package parser

import (
	"regexp"
	"sync"

	"resume-match-go/internal/types"
)

var (
	catalogOnce sync.Once
	catalogRes  map[string]*regexp.Regexp // 目录技能名 -> 整词匹配模式
)

// catalogRegexps 目录技能的整词匹配模式，惰性编译一次后复用
func catalogRegexps() map[string]*regexp.Regexp {
	catalogOnce.Do(func() {
		catalogRes = make(map[string]*regexp.Regexp)
		for _, list := range techSkillCatalog {
			for _, skill := range list {
				catalogRes[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
			}
		}
		for _, skill := range softSkills {
			catalogRes[skill] = regexp.MustCompile(`(?i)\b` + skill + `\b`)
		}
	})
	return catalogRes
}

// catalogOrder 类别扫描顺序，保证输出确定性
var catalogOrder = []string{"languages", "frameworks", "databases", "tools"}

// variantOrder 概念变体的扫描顺序
var variantOrder = []string{"REST", "GraphQL", "NoSQL", "CI/CD", "Microservices"}

// ExtractSkills 在整份清洗后的文本上做目录技能识别。
// 技术技能按类别归桶（frameworks并入tools），多写法概念按规范名计入，
// 软技能单独归桶；"all" 类别保存全集。各桶去重并保持首次出现顺序。
func ExtractSkills(text string) types.SkillSet {
	res := catalogRegexps()
	skills := types.SkillSet{
		"all":       {},
		"technical": {},
		"soft":      {},
		"languages": {},
		"tools":     {},
		"databases": {},
	}

	appendUnique := func(bucket, skill string) {
		for _, existing := range skills[bucket] {
			if existing == skill {
				return
			}
		}
		skills[bucket] = append(skills[bucket], skill)
	}

	for _, category := range catalogOrder {
		for _, skill := range techSkillCatalog[category] {
			if !res[skill].MatchString(text) {
				continue
			}
			appendUnique("technical", skill)
			appendUnique("all", skill)
			switch category {
			case "databases":
				appendUnique("databases", skill)
			case "languages":
				appendUnique("languages", skill)
			case "tools", "frameworks":
				appendUnique("tools", skill)
			}
		}
	}

	for _, canonical := range variantOrder {
		for _, re := range variantConcepts[canonical] {
			if re.MatchString(text) {
				appendUnique("technical", canonical)
				appendUnique("all", canonical)
				break
			}
		}
	}

	for _, skill := range softSkills {
		if res[skill].MatchString(text) {
			appendUnique("soft", skill)
			appendUnique("all", skill)
		}
	}

	return skills
}
