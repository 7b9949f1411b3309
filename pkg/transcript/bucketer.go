package transcript

import (
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
)

// minuteBucket 将完成的句子按起始分钟分组，只输出非空分组
//
// 分钟序号在输出中严格递增，没有句子的分钟直接跳过不补空组。
// 句子的归属只看开始时间，跨分钟的句子不会被拆开。
type minuteBucket struct {
	open   *models.MinuteSegment
	groups []models.MinuteSegment
}

// Add 将句子加入指定分钟的分组，分钟变化时关闭旧分组
func (b *minuteBucket) Add(seg models.TranscriptionSegment, minute int) {
	if b.open != nil && b.open.Minute != minute {
		b.closeOpen()
	}
	if b.open == nil {
		b.open = &models.MinuteSegment{Minute: minute}
	}
	b.open.Segments = append(b.open.Segments, seg)
}

func (b *minuteBucket) closeOpen() {
	if b.open != nil && len(b.open.Segments) > 0 {
		b.groups = append(b.groups, *b.open)
	}
	b.open = nil
}

// Flush 关闭最后一个分组并返回全部结果
func (b *minuteBucket) Flush() []models.MinuteSegment {
	b.closeOpen()
	return b.groups
}
