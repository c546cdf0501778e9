package config

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-match-go/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 阿里云LLM与Embedding配置
	Aliyun AliyunConfig `yaml:"aliyun"`

	// 解析器配置
	Parser ParserConfig `yaml:"parser"`

	// 评分配置
	Scoring ScoringConfig `yaml:"scoring"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080"
}

// AliyunConfig 阿里云API配置（OpenAI兼容端点）
type AliyunConfig struct {
	APIKey      string          `yaml:"api_key"`
	ChatModel   string          `yaml:"chat_model"`    // LLM提取器使用的对话模型
	ChatBaseURL string          `yaml:"chat_base_url"` // 对话补全端点
	Embedding   EmbeddingConfig `yaml:"embedding"`
}

// EmbeddingConfig Embedding专用配置
type EmbeddingConfig struct {
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	BaseURL    string `yaml:"base_url"`
}

// ParserConfig 简历解析器配置
type ParserConfig struct {
	// Engine 提取引擎选择："heuristic" 或 "llm"
	Engine string `yaml:"engine"`
	// MaxResumeLength 送入提取器的最大文本长度（字符数）
	MaxResumeLength int `yaml:"max_resume_length"`
	// MergeRepeatedSections 同类章节重复出现时是否合并（默认false，保持后者覆盖前者）
	MergeRepeatedSections bool `yaml:"merge_repeated_sections"`
}

// ScoringConfig 规则评分权重、语义混合权重与分类阈值
type ScoringConfig struct {
	// 规则评分：分项权重与上限
	RequiredSkillPoint     float64 `yaml:"required_skill_point"`      // 每个命中的必需技能
	PreferredSkillPoint    float64 `yaml:"preferred_skill_point"`     // 每个命中的优先技能
	ExperienceTitlePoint   float64 `yaml:"experience_title_point"`    // 每条职位名命中
	ExperienceDescBonus    float64 `yaml:"experience_desc_bonus"`     // 描述中每个必需技能命中
	ExperienceDescBonusCap float64 `yaml:"experience_desc_bonus_cap"` // 描述加分上限
	ExperienceCap          float64 `yaml:"experience_cap"`            // 经历分项总上限
	EducationFull          float64 `yaml:"education_full"`            // 学历完全匹配
	EducationPartial       float64 `yaml:"education_partial"`         // 学历部分匹配
	ProjectsCap            float64 `yaml:"projects_cap"`              // 项目分项上限
	CompanyPoint           float64 `yaml:"company_point"`             // 每条优先公司命中
	CompanyCap             float64 `yaml:"company_cap"`               // 公司分项上限
	MustHavePenalty        float64 `yaml:"must_have_penalty"`         // 缺失必备技能的固定扣分

	// 语义匹配：稠密向量与词法向量的混合权重
	DenseWeight   float64 `yaml:"dense_weight"`
	LexicalWeight float64 `yaml:"lexical_weight"`
	// 语义综合分中相似度与技能覆盖率的权重
	SimilarityWeight float64 `yaml:"similarity_weight"`
	CoverageWeight   float64 `yaml:"coverage_weight"`
	// TF-IDF词表上限
	TFIDFMaxFeatures int `yaml:"tfidf_max_features"`

	// 最终综合分中语义分与规则分的混合权重
	SemanticWeight float64 `yaml:"semantic_weight"`
	RuleWeight     float64 `yaml:"rule_weight"`

	// 分类阈值（0-100刻度，下界包含）
	SuitableThreshold float64 `yaml:"suitable_threshold"`
	MaybeThreshold    float64 `yaml:"maybe_threshold"`
}

// Default 返回带默认值的配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
		Aliyun: AliyunConfig{
			ChatModel:   "qwen-plus",
			ChatBaseURL: "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions",
			Embedding: EmbeddingConfig{
				Model:      "text-embedding-v3",
				Dimensions: 1024,
				BaseURL:    "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings",
			},
		},
		Parser: ParserConfig{
			Engine:          "heuristic",
			MaxResumeLength: 10000,
		},
		Scoring: ScoringConfig{
			RequiredSkillPoint:     10,
			PreferredSkillPoint:    3,
			ExperienceTitlePoint:   5,
			ExperienceDescBonus:    1,
			ExperienceDescBonusCap: 10,
			ExperienceCap:          15,
			EducationFull:          10,
			EducationPartial:       5,
			ProjectsCap:            10,
			CompanyPoint:           8,
			CompanyCap:             20,
			MustHavePenalty:        30,

			DenseWeight:      0.7,
			LexicalWeight:    0.3,
			SimilarityWeight: 0.6,
			CoverageWeight:   0.4,
			TFIDFMaxFeatures: 20000,

			SemanticWeight: 0.5,
			RuleWeight:     0.5,

			SuitableThreshold: 80,
			MaybeThreshold:    50,
		},
	}
}

// LoadConfig 加载配置文件。
// 未指定路径时在常见位置查找；找不到文件则直接使用默认配置。
// ALIYUN_API_KEY 环境变量始终覆盖文件中的API密钥。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-match", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	cfg := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	// 环境变量覆盖API密钥
	if apiKey := os.Getenv("ALIYUN_API_KEY"); apiKey != "" {
		cfg.Aliyun.APIKey = apiKey
	}

	return cfg, nil
}
