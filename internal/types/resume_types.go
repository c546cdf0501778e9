package types

// SectionKind 表示简历章节类型
type SectionKind string

const (
	// SectionHeader 首个章节标题之前的头部内容
	SectionHeader SectionKind = "header"
	// SectionContact 联系方式章节
	SectionContact SectionKind = "contact"
	// SectionSummary 个人总结章节
	SectionSummary SectionKind = "summary"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "skills"
	// SectionExperience 工作经历章节
	SectionExperience SectionKind = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "education"
	// SectionCertifications 证书章节
	SectionCertifications SectionKind = "certifications"
	// SectionProjects 项目经历章节
	SectionProjects SectionKind = "projects"
	// SectionAccomplishments 成就章节
	SectionAccomplishments SectionKind = "accomplishments"
	// SectionLanguages 语言能力章节
	SectionLanguages SectionKind = "languages"
	// SectionUnknown 未分类内容章节
	SectionUnknown SectionKind = "unknown"
)

// ContactInfo 联系方式，所有字段均可缺省，缺省不视为错误
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience 单条工作经历。日期保留原始展示字符串，"Present"是合法的结束哨兵值。
// 提取完成后不再修改。
type Experience struct {
	Company     string   `json:"company,omitempty"`
	Title       string   `json:"title,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description []string `json:"description"`
	// RawText 条目原文的有界摘录，用于追溯
	RawText string `json:"raw_text,omitempty"`
}

// Education 单条教育经历。GraduationYear 取条目中字典序最大的年份字符串。
type Education struct {
	Degree         string   `json:"degree,omitempty"`
	Field          string   `json:"field,omitempty"`
	School         string   `json:"school,omitempty"`
	Location       string   `json:"location,omitempty"`
	GraduationYear string   `json:"graduation_year,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Honors         []string `json:"honors"`
	RawText        string   `json:"raw_text,omitempty"`
}

// SkillSet 技能分类映射，"all" 类别保存去重后的全集
type SkillSet map[string][]string

// JobDescription 岗位描述，由上游调用方构造，所有字段均可缺省
type JobDescription struct {
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	MustHaveSkills     []string `json:"must_have_skills,omitempty"`
	PreferredCompanies []string `json:"preferred_companies,omitempty"`
	EducationRequired  string   `json:"education_required,omitempty"`
}

// ScoreBreakdown 规则评分的分项明细。Total 在所有上限与必备技能惩罚之后落在 [0,100]。
type ScoreBreakdown struct {
	SkillsScore     float64 `json:"skills_score"`
	EducationScore  float64 `json:"education_score"`
	ExperienceScore float64 `json:"experience_score"`
	ProjectsScore   float64 `json:"projects_score"`
	CompanyScore    float64 `json:"company_score"`
	Total           float64 `json:"total"`
}

// ParseMetadata 解析元数据。解析内部故障不向外抛出，
// 通过 ParsingSuccess=false 加 Error 字符串报告。
type ParseMetadata struct {
	SectionsDetected []SectionKind `json:"sections_detected"`
	ParsingSuccess   bool          `json:"parsing_success"`
	Error            string        `json:"error,omitempty"`
}

// ResumeRecord 整份简历的结构化记录。
// 既可由启发式提取器产出（字段形态严格），也可由LLM提取器产出（同名字段、形态更宽松），
// 宽松形态由 Flex* 类型在反序列化边界统一吸收。
type ResumeRecord struct {
	Contact ContactInfo `json:"contact"`
	Summary string      `json:"summary,omitempty"`
	// Skills 与 TechnicalSkills 两个字段名都被下游接受，聚合时取并集
	Skills          FlexSkills              `json:"skills,omitempty"`
	TechnicalSkills FlexSkills              `json:"technical_skills,omitempty"`
	Experience      []FlexExperience        `json:"experience"`
	WorkExperience  []FlexExperience        `json:"work_experience,omitempty"`
	Education       []FlexEducation         `json:"education"`
	Projects        []FlexProject           `json:"projects,omitempty"`
	Sections        map[SectionKind]string  `json:"sections,omitempty"`
	Metadata        ParseMetadata           `json:"metadata"`
	// RawText 仅在提取失败降级时回填原始输入文本
	RawText string `json:"raw_text,omitempty"`
}

// MatchResult 单份简历对单个岗位的完整匹配结果
type MatchResult struct {
	MatchID            string         `json:"match_id,omitempty"`
	Label              string         `json:"label"`
	CompositeScore     float64        `json:"composite_score"`
	SemanticSimilarity float64        `json:"semantic_similarity"`
	SkillCoverage      float64        `json:"skill_coverage"`
	SemanticScore      float64        `json:"semantic_score"`
	RuleScore          float64        `json:"rule_score"`
	Breakdown          ScoreBreakdown `json:"breakdown"`
	MatchedRequired    []string       `json:"matched_required"`
	MissingRequired    []string       `json:"missing_required"`
}
