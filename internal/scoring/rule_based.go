// Package scoring 提供确定性的规则评分与分数标签分类。
// 规则评分不依赖任何外部服务，同样的输入永远得到同样的输出。
package scoring

import (
	"strings"

	"resume-match-go/internal/config"
	"resume-match-go/internal/skills"
	"resume-match-go/internal/types"
)

// 每个命中必需技能的项目得分
const projectSkillPoint = 2

// RuleBasedScorer 加性规则评分器。
// 各分项独立计分并受各自上限约束，总分再受[0,100]约束。
type RuleBasedScorer struct {
	cfg config.ScoringConfig
}

// NewRuleBasedScorer 创建规则评分器
func NewRuleBasedScorer(cfg config.ScoringConfig) *RuleBasedScorer {
	return &RuleBasedScorer{cfg: cfg}
}

// Score 对简历与岗位计算规则分。
// 返回总分、分项明细、命中的必需技能与缺失的必需技能（均按字典序排序）。
func (s *RuleBasedScorer) Score(resume *types.ResumeRecord, job types.JobDescription) (float64, types.ScoreBreakdown, []string, []string) {
	var breakdown types.ScoreBreakdown

	resumeSkills := aggregateResumeSkills(resume)
	required := skills.Normalize(job.RequiredSkills)
	preferred := skills.Normalize(job.PreferredSkills)

	matchedRequired := matchSkills(required, resumeSkills)
	matchedPreferred := matchSkills(preferred, resumeSkills)

	breakdown.SkillsScore = float64(len(matchedRequired))*s.cfg.RequiredSkillPoint +
		float64(len(matchedPreferred))*s.cfg.PreferredSkillPoint

	breakdown.EducationScore = s.scoreEducation(resume, job)
	breakdown.ExperienceScore = s.scoreExperience(resume, required)
	breakdown.ProjectsScore = s.scoreProjects(resume, required)
	breakdown.CompanyScore = s.scoreCompanies(resume, job)

	total := breakdown.SkillsScore + breakdown.EducationScore +
		breakdown.ExperienceScore + breakdown.ProjectsScore + breakdown.CompanyScore

	// 必备技能缺失时一次性扣固定分，扣后不为负
	mustHave := skills.Normalize(job.MustHaveSkills)
	for skill := range mustHave {
		if !resumeSkills.Has(skill) {
			total -= s.cfg.MustHavePenalty
			if total < 0 {
				total = 0
			}
			break
		}
	}

	if total > 100 {
		total = 100
	}
	breakdown.Total = total

	var missing skills.Set = make(skills.Set)
	for skill := range required {
		if !matchedRequired.Has(skill) {
			missing.Add(skill)
		}
	}
	return total, breakdown, matchedRequired.Sorted(), missing.Sorted()
}

// aggregateResumeSkills 聚合简历的 skills 与 technical_skills 并规范化
func aggregateResumeSkills(resume *types.ResumeRecord) skills.Set {
	var raw []string
	raw = append(raw, resume.Skills.Tokens()...)
	raw = append(raw, resume.TechnicalSkills.Tokens()...)
	return skills.Normalize(raw)
}

// matchSkills 直接匹配加部分匹配：
// 复合技能（如 "rest api development"）按词拆分，任一长度大于2的词
// 作为子串出现在某个简历技能里即视为命中。
func matchSkills(jobSkills, resumeSkills skills.Set) skills.Set {
	matched := jobSkills.Intersect(resumeSkills)
	for jobSkill := range jobSkills {
		if matched.Has(jobSkill) {
			continue
		}
		parts := strings.Fields(jobSkill)
	partLoop:
		for resumeSkill := range resumeSkills {
			for _, part := range parts {
				if len(part) > 2 && strings.Contains(resumeSkill, part) {
					matched.Add(jobSkill)
					break partLoop
				}
			}
		}
	}
	return matched
}

// scoreEducation 学历分：第一条学位与要求首词吻合的记录生效后停止。
// 要求为计算机科学且专业方向包含 comput 时给全额，否则给部分分。
func (s *RuleBasedScorer) scoreEducation(resume *types.ResumeRecord, job types.JobDescription) float64 {
	req := strings.ToLower(job.EducationRequired)
	fields := strings.Fields(req)
	if len(fields) == 0 {
		return 0
	}
	base := fields[0]

	var eduScore float64
	for _, edu := range resume.Education {
		degree := strings.ToLower(edu.Degree())
		field := strings.ToLower(edu.Field())
		if degree == "" || !strings.Contains(degree, base) {
			continue
		}
		if strings.Contains(req, "computer") && strings.Contains(req, "science") &&
			strings.Contains(field, "comput") {
			eduScore = s.cfg.EducationFull
		} else if s.cfg.EducationPartial > eduScore {
			eduScore = s.cfg.EducationPartial
		}
		break
	}
	return eduScore
}

// scoreExperience 经历分：职位名包含任一必需技能的条目各得固定分，
// 描述中每出现一个必需技能加小额分（有上限），分项总和再受上限约束。
func (s *RuleBasedScorer) scoreExperience(resume *types.ResumeRecord, required skills.Set) float64 {
	var titleScore, descBonus float64
	for _, exp := range resume.Experience {
		title := strings.ToLower(exp.Title())
		descText := strings.ToLower(exp.DescriptionText())

		for skill := range required {
			if strings.Contains(title, skill) {
				titleScore += s.cfg.ExperienceTitlePoint
				break
			}
		}
		for skill := range required {
			if strings.Contains(descText, skill) {
				descBonus += s.cfg.ExperienceDescBonus
			}
		}
	}
	if descBonus > s.cfg.ExperienceDescBonusCap {
		descBonus = s.cfg.ExperienceDescBonusCap
	}
	total := titleScore + descBonus
	if total > s.cfg.ExperienceCap {
		total = s.cfg.ExperienceCap
	}
	return total
}

// scoreProjects 项目分：每个项目按其技术栈与必需技能的交集大小计分。
// 纯文本项目按必需技能是否出现在文本中计。
func (s *RuleBasedScorer) scoreProjects(resume *types.ResumeRecord, required skills.Set) float64 {
	var projScore float64
	for _, proj := range resume.Projects {
		var overlap int
		if len(proj.Technologies) > 0 {
			techs := make(skills.Set, len(proj.Technologies))
			for _, t := range proj.Technologies {
				techs.Add(strings.ToLower(t))
			}
			overlap = len(techs.Intersect(required))
		} else if proj.Text != "" {
			text := strings.ToLower(proj.Text)
			for skill := range required {
				if strings.Contains(text, skill) {
					overlap++
				}
			}
		}
		projScore += float64(overlap * projectSkillPoint)
	}
	if projScore > s.cfg.ProjectsCap {
		projScore = s.cfg.ProjectsCap
	}
	return projScore
}

// scoreCompanies 公司分：experience 与 work_experience 两个字段都检查，
// 公司名包含任一优先公司的条目各得固定分，分项受上限约束。
func (s *RuleBasedScorer) scoreCompanies(resume *types.ResumeRecord, job types.JobDescription) float64 {
	if len(job.PreferredCompanies) == 0 {
		return 0
	}
	preferred := make([]string, 0, len(job.PreferredCompanies))
	for _, c := range job.PreferredCompanies {
		preferred = append(preferred, strings.ToLower(c))
	}

	var companyScore float64
	countEntries := func(entries []types.FlexExperience) {
		for _, exp := range entries {
			company := strings.ToLower(exp.Company())
			if company == "" {
				continue
			}
			for _, pref := range preferred {
				if strings.Contains(company, pref) {
					companyScore += s.cfg.CompanyPoint
					break
				}
			}
		}
	}
	countEntries(resume.Experience)
	countEntries(resume.WorkExperience)

	if companyScore > s.cfg.CompanyCap {
		companyScore = s.cfg.CompanyCap
	}
	return companyScore
}
