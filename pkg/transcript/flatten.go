package transcript

import (
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
)

// Flatten 将分钟分组展开为扁平的句子序列
// 去掉分钟分组和FormattedTime，顺序保持不变，下游存储只使用这种形式
func Flatten(groups []models.MinuteSegment) []models.FlatSegment {
	var flat []models.FlatSegment

	for _, group := range groups {
		for _, seg := range group.Segments {
			flat = append(flat, models.FlatSegment{
				StartMs:       seg.StartMs,
				EndMs:         seg.EndMs,
				FinalSentence: seg.FinalSentence,
				SpeakerId:     seg.SpeakerId,
			})
		}
	}

	return flat
}
