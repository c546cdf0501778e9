package types

import (
	"encoding/json"
	"strings"
)

// 本文件定义评分边界的形态适配类型。
// 启发式提取器产出严格形态，LLM提取器可能返回扁平列表或纯字符串条目，
// 这里用带标签的联合类型一次性归一，评分组件内部不再做类型探测。

// FlexSkills 技能字段的联合形态：类别映射或扁平列表
type FlexSkills struct {
	Categories SkillSet `json:"-"`
	Flat       []string `json:"-"`
}

// UnmarshalJSON 接受 {"类别": ["技能"...]} 或 ["技能"...] 两种形态，
// 无法解释的形态静默置空而不报错
func (f *FlexSkills) UnmarshalJSON(data []byte) error {
	var asMap map[string][]string
	if err := json.Unmarshal(data, &asMap); err == nil {
		f.Categories = asMap
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		f.Flat = asList
		return nil
	}
	// 混合值类别（如 {"languages": "english"}）逐键宽松解析
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(data, &loose); err == nil {
		cats := make(SkillSet, len(loose))
		for k, raw := range loose {
			var list []string
			if json.Unmarshal(raw, &list) == nil {
				cats[k] = list
				continue
			}
			var single string
			if json.Unmarshal(raw, &single) == nil && single != "" {
				cats[k] = []string{single}
			}
		}
		f.Categories = cats
		return nil
	}
	f.Categories = nil
	f.Flat = nil
	return nil
}

// MarshalJSON 按原始形态输出
func (f FlexSkills) MarshalJSON() ([]byte, error) {
	if f.Categories != nil {
		return json.Marshal(f.Categories)
	}
	if f.Flat != nil {
		return json.Marshal(f.Flat)
	}
	return []byte("null"), nil
}

// Tokens 展平为技能字符串序列，跳过空白项
func (f FlexSkills) Tokens() []string {
	var out []string
	for _, list := range f.Categories {
		for _, s := range list {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	}
	for _, s := range f.Flat {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsEmpty 报告是否两种形态都为空
func (f FlexSkills) IsEmpty() bool {
	return len(f.Categories) == 0 && len(f.Flat) == 0
}

// FlexExperience 工作经历条目的联合形态：结构化条目或纯文本
type FlexExperience struct {
	Entry *Experience `json:"-"`
	Text  string      `json:"-"`
}

// NewExperienceEntry 从结构化条目构造
func NewExperienceEntry(exp Experience) FlexExperience {
	return FlexExperience{Entry: &exp}
}

// UnmarshalJSON 接受对象或字符串，两者都不是时置空跳过
func (f *FlexExperience) UnmarshalJSON(data []byte) error {
	var entry Experience
	if err := json.Unmarshal(data, &entry); err == nil {
		f.Entry = &entry
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		f.Text = text
		return nil
	}
	return nil
}

// MarshalJSON 按原始形态输出
func (f FlexExperience) MarshalJSON() ([]byte, error) {
	if f.Entry != nil {
		return json.Marshal(f.Entry)
	}
	return json.Marshal(f.Text)
}

// Title 返回职位名，纯文本条目返回全文
func (f FlexExperience) Title() string {
	if f.Entry != nil {
		return f.Entry.Title
	}
	return f.Text
}

// Company 返回公司名，纯文本条目没有可靠的公司字段，返回空
func (f FlexExperience) Company() string {
	if f.Entry != nil {
		return f.Entry.Company
	}
	return ""
}

// DescriptionText 将描述折叠为单个字符串，列表形态用空格连接
func (f FlexExperience) DescriptionText() string {
	if f.Entry != nil {
		return strings.Join(f.Entry.Description, " ")
	}
	return f.Text
}

// FlexEducation 教育经历条目的联合形态：结构化条目或纯文本
type FlexEducation struct {
	Entry *Education `json:"-"`
	Text  string     `json:"-"`
}

// NewEducationEntry 从结构化条目构造
func NewEducationEntry(edu Education) FlexEducation {
	return FlexEducation{Entry: &edu}
}

// UnmarshalJSON 接受对象或字符串
func (f *FlexEducation) UnmarshalJSON(data []byte) error {
	var entry Education
	if err := json.Unmarshal(data, &entry); err == nil {
		f.Entry = &entry
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		f.Text = text
		return nil
	}
	return nil
}

// MarshalJSON 按原始形态输出
func (f FlexEducation) MarshalJSON() ([]byte, error) {
	if f.Entry != nil {
		return json.Marshal(f.Entry)
	}
	return json.Marshal(f.Text)
}

// Degree 返回学位描述，纯文本条目返回全文
func (f FlexEducation) Degree() string {
	if f.Entry != nil {
		return f.Entry.Degree
	}
	return f.Text
}

// Field 返回专业方向，纯文本条目返回全文
func (f FlexEducation) Field() string {
	if f.Entry != nil {
		return f.Entry.Field
	}
	return f.Text
}

// FlexProject 项目条目的联合形态：带技术栈列表的对象或纯文本
type FlexProject struct {
	Name         string   `json:"name,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Text         string   `json:"-"`
}

// UnmarshalJSON 接受对象或字符串
func (f *FlexProject) UnmarshalJSON(data []byte) error {
	type plain FlexProject
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		*f = FlexProject(p)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		f.Text = text
		return nil
	}
	return nil
}
