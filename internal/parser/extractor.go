package parser

import (
	"context"
	"fmt"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"
)

// 总结章节写入记录时的长度上限（字符数）
const summaryLimit = 500

// Extractor 简历结构化提取器。
// 实现不向调用方抛出解析故障：内部失败时返回 ParsingSuccess=false 的降级记录。
type Extractor interface {
	Extract(ctx context.Context, text string) *types.ResumeRecord
}

// HeuristicExtractor 基于规则的提取器：
// 清洗 -> 章节切分 -> 联系方式/技能/经历/教育各路提取。
// 不依赖外部服务，作为默认引擎和LLM引擎的兜底。
type HeuristicExtractor struct {
	segmenter Segmenter
}

// NewHeuristicExtractor 创建启发式提取器
func NewHeuristicExtractor(mergeRepeats bool) *HeuristicExtractor {
	return &HeuristicExtractor{
		segmenter: Segmenter{MergeRepeats: mergeRepeats},
	}
}

// Extract 执行提取。任何内部panic都被吸收为降级记录，不向上传播。
func (e *HeuristicExtractor) Extract(ctx context.Context, text string) (record *types.ResumeRecord) {
	defer func() {
		if r := recover(); r != nil {
			logger.Ctx(ctx).Error().Interface("panic", r).Msg("简历解析失败，返回降级记录")
			record = failedRecord(fmt.Sprintf("parse failure: %v", r))
		}
	}()

	cleaned := CleanText(text)
	sections, detected := e.segmenter.Segment(cleaned)

	record = &types.ResumeRecord{
		Contact: ExtractContact(cleaned),
		Summary: truncateRunes(sections[types.SectionSummary], summaryLimit),
		Skills: types.FlexSkills{
			Categories: ExtractSkills(cleaned),
		},
		Experience: flexExperiences(ExtractExperience(sections, cleaned)),
		Education:  flexEducations(ExtractEducation(sections, cleaned)),
		Sections:   sections,
		Metadata: types.ParseMetadata{
			SectionsDetected: detected,
			ParsingSuccess:   true,
		},
	}
	return record
}

// failedRecord 构造降级记录：空容器而非nil，便于下游无判空消费
func failedRecord(errMsg string) *types.ResumeRecord {
	return &types.ResumeRecord{
		Skills:     types.FlexSkills{Categories: types.SkillSet{"all": {}}},
		Experience: []types.FlexExperience{},
		Education:  []types.FlexEducation{},
		Metadata: types.ParseMetadata{
			SectionsDetected: []types.SectionKind{},
			ParsingSuccess:   false,
			Error:            errMsg,
		},
	}
}

func flexExperiences(exps []types.Experience) []types.FlexExperience {
	out := make([]types.FlexExperience, 0, len(exps))
	for _, exp := range exps {
		out = append(out, types.NewExperienceEntry(exp))
	}
	return out
}

func flexEducations(edus []types.Education) []types.FlexEducation {
	out := make([]types.FlexEducation, 0, len(edus))
	for _, edu := range edus {
		out = append(out, types.NewEducationEntry(edu))
	}
	return out
}
