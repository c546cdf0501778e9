package parser

import (
	"regexp"

	"resume-match-go/internal/types"
)

// 本文件集中维护解析用的静态查找表（章节标题、职位名、公司指示词、日期、
// 学位族、技能目录、概念变体），与解析控制流解耦，便于独立测试与扩展。

// sectionHeaderPatterns 各章节类型的标题匹配模式。
// 匹配对象是去掉尾部标点、前导符号后的小写行，模式自带首尾锚点。
var sectionHeaderPatterns = map[types.SectionKind][]*regexp.Regexp{
	types.SectionSummary: compileAll(
		`^(professional\s+)?summary$`,
		`^(career\s+)?objective$`,
		`^profile$`,
		`^about(\s+me)?$`,
		`^overview$`,
		`^statement$`,
		`^career\s+highlights?$`,
	),
	types.SectionExperience: compileAll(
		`^(professional\s+)?experience$`,
		`^work\s+(experience|history)$`,
		`^employment(\s+history)?$`,
		`^career\s+history$`,
		`^professional\s+background$`,
		`^relevant\s+experience$`,
	),
	types.SectionEducation: compileAll(
		`^education(\s+and\s+training)?$`,
		`^academic\s+(background|history)$`,
		`^academic\s+credentials$`,
		`^qualifications$`,
		`^training$`,
		`^education\s+&\s+certifications?$`,
	),
	types.SectionSkills: compileAll(
		`^(technical\s+)?skills?$`,
		`^core\s+competenc(y|ies)$`,
		`^areas?\s+of\s+expertise$`,
		`^technical\s+expertise$`,
		`^skill\s+highlights?$`,
		`^qualifications$`,
		`^capabilities$`,
	),
	types.SectionCertifications: compileAll(
		`^certifications?$`,
		`^licenses?(\s+and\s+certifications?)?$`,
		`^professional\s+certifications?$`,
		`^credentials?$`,
	),
	types.SectionProjects: compileAll(
		`^projects?$`,
		`^(personal\s+)?portfolio$`,
		`^key\s+projects?$`,
		`^notable\s+projects?$`,
	),
	types.SectionAccomplishments: compileAll(
		`^accomplishments?$`,
		`^achievements?$`,
		`^awards?(\s+and\s+honors?)?$`,
		`^honors?(\s+and\s+awards?)?$`,
		`^recognition$`,
		`^notable\s+achievements?$`,
	),
}

// sectionMatchOrder 标题识别的尝试顺序。歧义标题（如 qualifications
// 同时出现在 education 与 skills 的模式里）按此顺序归入先命中的类型。
var sectionMatchOrder = []types.SectionKind{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionCertifications,
	types.SectionProjects,
	types.SectionAccomplishments,
}

// jobTitlePatterns 常见职位名模式，原始字符串形式保留，
// 便于拼接到职位名上下文扩展模式中。前5条同时用于经历条目切分。
var jobTitlePatterns = []string{
	// 管理类
	`\b(CEO|CFO|CTO|COO|CMO|CIO|VP|Vice\s+President)\b`,
	`\b(Director|Manager|Supervisor|Lead|Head\s+of|Chief)\b`,
	`\b(Coordinator|Administrator|Specialist|Analyst)\b`,
	// 技术类
	`\b(Engineer|Developer|Programmer|Architect|Designer)\b`,
	`\b(Scientist|Researcher|Technician)\b`,
	// 商务类
	`\b(Consultant|Advisor|Strategist|Executive)\b`,
	`\b(Representative|Associate|Assistant|Officer)\b`,
	// 具体职能
	`\b(HR|Human\s+Resources?|Recruiter|Talent)\b`,
	`\b(Sales|Marketing|Business\s+Development)\b`,
	`\b(Finance|Accounting|Audit)\b`,
	`\b(Product|Project|Program)\s+(Manager|Owner)\b`,
}

// companyIndicatorPatterns 公司指示词模式，前3条同时用于经历条目切分
var companyIndicatorPatterns = []string{
	`\b(Inc|LLC|Corp|Corporation|Company|Ltd|Limited|Group|Partners|LLP)\b`,
	`\b(Associates|Solutions|Services|Consulting|Technologies|Systems)\b`,
	`\b(University|College|Institute|School|Academy)\b`,
	`\b(Hospital|Medical|Health|Clinic)\b`,
	`\b(Bank|Financial|Capital|Investments)\b`,
}

var (
	jobTitleRes         []*regexp.Regexp // (?i)编译后的职位名模式
	jobTitleContextRes  []*regexp.Regexp // 带左右上下文捕获的职位名模式
	companyIndicatorRes []*regexp.Regexp // (?i)编译后的公司指示词模式
	companyLineRes      []*regexp.Regexp // 带整行上下文捕获的公司指示词模式
)

func init() {
	for _, pat := range jobTitlePatterns {
		jobTitleRes = append(jobTitleRes, regexp.MustCompile(`(?i)`+pat))
		jobTitleContextRes = append(jobTitleContextRes,
			regexp.MustCompile(`(?i)([A-Za-z\s]+?`+pat+`[A-Za-z\s]*)`))
	}
	for _, pat := range companyIndicatorPatterns {
		companyIndicatorRes = append(companyIndicatorRes, regexp.MustCompile(`(?i)`+pat))
		// 指示词忽略大小写，但公司名必须以大写字母开头
		companyLineRes = append(companyLineRes,
			regexp.MustCompile(`([A-Z][^,\n]*(?i:`+pat+`)[^,\n]*)`))
	}
}

// 日期模式。standaloneDateRes 的顺序即收集优先级。
var (
	dateRangeRe = regexp.MustCompile(
		`(?i)(\w+\s+\d{4}|\d{1,2}/\d{4})\s*(?:-|–|—|to)\s*(\w+\s+\d{4}|\d{1,2}/\d{4}|Present|Current)`)
	standaloneDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`),
		regexp.MustCompile(`\d{1,2}/\d{4}`),
		regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:Present|Current|Now|Ongoing|Today)\b`),
	}
	entryDateStartRe = regexp.MustCompile(`^\s*(?:\d{1,2}/\d{4}|\w+\s+\d{4})`)
)

// degreePattern 学位族模式，按优先级排列，第一个命中者生效
type degreePattern struct {
	re       *regexp.Regexp
	hasField bool // 模式是否带专业方向捕获组
}

var degreePatterns = []degreePattern{
	// Bachelor系
	{regexp.MustCompile(`(?i)(Bachelor(?:'?s)?|B\.?Sc\.?|BSc|BS|B\.?S\.?|B\.?Eng\.?|BEng)\b\s*(?:of\s+)?([A-Za-z\s]+?)(?:\s*[-,]|$)`), true},
	// Master系
	{regexp.MustCompile(`(?i)(Master(?:'?s)?|M\.?Sc\.?|MSc|MS|M\.?S\.?|M\.?Eng\.?|MEng)\b\s*(?:of\s+)?([A-Za-z\s]+?)(?:\s*[-,]|$)`), true},
	// 博士系
	{regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctor(?:ate)?)\b\s*(?:in\s+)?([A-Za-z\s]+?)(?:\s*[-,]|$)`), true},
	// Associate系
	{regexp.MustCompile(`(?i)(Associate(?:'?s)?)\b\s*(?:of\s+)?([A-Za-z\s]+?)(?:\s*[-,]|$)`), true},
	// 单词元职业学位，无专业方向捕获组
	{regexp.MustCompile(`(?i)(MBA|MFA|MEd|MPH|MPA|JD|MD)\b`), false},
}

// 教育相关模式
var (
	degreeKeywordRe = regexp.MustCompile(`(?i)\b(Bachelor|Master|Ph\.?D|Doctor|Associate|Diploma|Certificate|MBA|B\.[A-Z]|M\.[A-Z])\b`)
	schoolRe        = regexp.MustCompile(`([A-Z][^\n]*(?:University|College|Institute|School)[^\n]*)`)
	gradYearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRe           = regexp.MustCompile(`(?i)(?:GPA|Grade|Score)[:\s]*([0-9]\.[0-9]+)(?:\s*/\s*([0-9]\.[0-9]+))?`)
	honorsRes       = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(cum laude|magna cum laude|summa cum laude)`),
		regexp.MustCompile(`(?i)(Dean'?s List|President'?s List|Honor Roll)`),
		regexp.MustCompile(`(?i)(Valedictorian|Salutatorian)`),
	}
)

// techSkillCatalog 技术技能目录，按类别组织。
// frameworks类别在结果中折叠进tools桶。
var techSkillCatalog = map[string][]string{
	"languages": {"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "Go",
		"Rust", "Swift", "Kotlin", "R", "SQL", "PHP", "Perl", "Scala"},
	"frameworks": {"React", "Angular", "Vue", "Django", "Flask", "Spring", "Node.js",
		"Express", ".NET", "Rails", "Laravel"},
	"databases": {"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server",
		"Cassandra", "DynamoDB", "Elasticsearch"},
	"tools": {"Git", "Docker", "Kubernetes", "Jenkins", "AWS", "Azure", "GCP",
		"Terraform", "Ansible", "JIRA", "Confluence"},
}

// variantConcepts 多写法概念，任一变体命中即按规范名计入
var variantConcepts = map[string][]*regexp.Regexp{
	"REST":          compileAll(`(?i)\bREST\b`, `(?i)\bRESTful\b`),
	"GraphQL":       compileAll(`(?i)\bGraph\s?QL\b`),
	"NoSQL":         compileAll(`(?i)\bNo\s?SQL\b`),
	"CI/CD":         compileAll(`(?i)\bCI\s*/\s*CD\b`, `(?i)\bCI[- ]?CD\b`),
	"Microservices": compileAll(`(?i)\bmicroservices?(?:\s+architecture)?\b`),
}

// softSkills 软技能短语表
var softSkills = []string{
	"Leadership", "Communication", "Problem Solving", "Team", "Collaboration",
	"Management", "Analytical", "Creative", "Strategic", "Critical Thinking",
	"Project Management", "Time Management", "Presentation",
}

// nameBlacklist 姓名识别时排除的关键词
var nameBlacklist = []string{"summary", "objective", "highlights", "focused", "driven", "results"}

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}
