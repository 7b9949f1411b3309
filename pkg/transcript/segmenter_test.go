package transcript

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// word 构造一个带时间和说话人的词令牌
func word(text string, start, end float64, speaker string) Token {
	return Token{
		Kind:       KindWord,
		StartTime:  start,
		EndTime:    end,
		HasEndTime: true,
		Text:       text,
		Speaker:    speaker,
	}
}

// punct 构造一个标点令牌
func punct(text string) Token {
	return Token{Kind: KindPunctuation, Text: text}
}

func TestSegmentMergesAcrossWeakBoundary(t *testing.T) {
	// 长停顿加说话人切换，但词数都不够边界阈值，应合并为一个句子
	tokens := []Token{
		word("Hello", 0.0, 0.5, "spk_0"),
		punct("."),
		word("World", 5.2, 5.6, "spk_1"),
	}

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Minute)
	assert.Len(t, groups[0].Segments, 1)

	seg := groups[0].Segments[0]
	assert.Equal(t, "Hello. World", seg.FinalSentence)
	assert.Equal(t, 0, seg.StartMs)
	assert.Equal(t, 5600, seg.EndMs)
	// 说话人取句子开启时的标识
	assert.Equal(t, "Speaker 1", seg.SpeakerId)
	assert.Equal(t, "00:00:00", seg.FormattedTime)
}

func TestSegmentHardCapSplitsLongRun(t *testing.T) {
	// 160个连续词，无标点无停顿，硬上限应切出150+10两个句子
	var tokens []Token
	for i := 0; i < 160; i++ {
		start := float64(i) * 0.1
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.05, "spk_0"))
	}

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Segments, 2)

	first := groups[0].Segments[0]
	second := groups[0].Segments[1]
	assert.Len(t, strings.Fields(first.FinalSentence), 150)
	assert.Len(t, strings.Fields(second.FinalSentence), 10)
	// 第二个句子从第151个词开始
	assert.Equal(t, "w150", strings.Fields(second.FinalSentence)[0])
	assert.Equal(t, 15000, second.StartMs)
}

func TestSegmentBreaksOnSpeakerTurn(t *testing.T) {
	// 15个词以问号结尾，说话人切换且停顿5秒，应在切换处断句
	var tokens []Token
	for i := 0; i < 14; i++ {
		start := float64(i) * 0.2
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.1, "spk_0"))
	}
	tokens = append(tokens, word("really", 2.8, 2.9, "spk_0"))
	tokens = append(tokens, punct("?"))
	tokens = append(tokens, word("Yes", 7.9, 8.1, "spk_1"))

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Segments, 2)

	first := groups[0].Segments[0]
	second := groups[0].Segments[1]
	assert.True(t, strings.HasSuffix(first.FinalSentence, "really?"))
	assert.Equal(t, "Speaker 1", first.SpeakerId)
	assert.Equal(t, "Yes", second.FinalSentence)
	assert.Equal(t, "Speaker 2", second.SpeakerId)
	assert.Equal(t, 7900, second.StartMs)
}

func TestSegmentBreaksOnPause(t *testing.T) {
	// 20个词以句号结尾，下一个词距句子开始超过4秒，同一说话人也应断句
	var tokens []Token
	for i := 0; i < 19; i++ {
		start := float64(i) * 0.1
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.05, "spk_0"))
	}
	tokens = append(tokens, word("done.", 1.9, 2.0, "spk_0"))
	tokens = append(tokens, word("Next", 4.5, 4.7, "spk_0"))

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Segments, 2)
	assert.True(t, strings.HasSuffix(groups[0].Segments[0].FinalSentence, "done."))
	assert.Equal(t, "Next", groups[0].Segments[1].FinalSentence)
}

func TestSegmentNoBreakWithoutTerminalPunct(t *testing.T) {
	// 停顿够长词数够多但没有句末标点，不应断句
	var tokens []Token
	for i := 0; i < 25; i++ {
		start := float64(i) * 0.1
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.05, "spk_0"))
	}
	tokens = append(tokens, word("more", 8.0, 8.2, "spk_0"))

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Segments, 1)
	assert.Len(t, strings.Fields(groups[0].Segments[0].FinalSentence), 26)
}

func TestSegmentEmptyInput(t *testing.T) {
	groups := NewSegmenter(false).Segment(nil)
	assert.Empty(t, groups)
}

func TestSegmentEmptyWordsProduceNoSentence(t *testing.T) {
	// 候选内容为空的词开启句子但不贡献文本，全空输入不应产生句子
	tokens := []Token{
		word("", 0.0, 0.5, "spk_0"),
		word("", 1.0, 1.5, "spk_0"),
	}

	groups := NewSegmenter(false).Segment(tokens)
	assert.Empty(t, groups)
}

func TestSegmentEmptyWordOpensSentenceTiming(t *testing.T) {
	// 空词的时间仍然参与句子起始时间的计算
	tokens := []Token{
		word("", 1.0, 1.2, "spk_0"),
		word("Hi", 1.5, 1.8, "spk_0"),
	}

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	seg := groups[0].Segments[0]
	assert.Equal(t, "Hi", seg.FinalSentence)
	assert.Equal(t, 1000, seg.StartMs)
	assert.Equal(t, 1800, seg.EndMs)
}

func TestSegmentMinuteGroupsSkipEmptyMinutes(t *testing.T) {
	// 分钟分组只输出非空分组，序号严格递增，中间没有句子的分钟直接跳过
	var tokens []Token
	for i := 0; i < 14; i++ {
		start := float64(i) * 0.2
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.1, "spk_0"))
	}
	tokens = append(tokens, word("over.", 2.8, 2.9, "spk_0"))
	// 下一个说话人在第3分钟才开口
	tokens = append(tokens, word("Finally", 130.0, 130.4, "spk_1"))

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].Minute)
	assert.Equal(t, 2, groups[1].Minute)
	assert.Less(t, groups[0].Minute, groups[1].Minute)
	assert.Equal(t, "Finally", groups[1].Segments[0].FinalSentence)
	assert.Equal(t, "00:02:10", groups[1].Segments[0].FormattedTime)
}

func TestSegmentPreservesWordOrder(t *testing.T) {
	// 所有词按输入顺序出现在输出文本中，不丢词
	texts := []string{"the", "quick", "brown", "fox", "jumps"}
	var tokens []Token
	for i, text := range texts {
		start := float64(i) * 0.3
		tokens = append(tokens, word(text, start, start+0.2, "spk_0"))
	}

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Equal(t, strings.Join(texts, " "), groups[0].Segments[0].FinalSentence)
}

func TestSegmentSpeakerLabelsAssignedInOpenOrder(t *testing.T) {
	// 展示名称按句子开启顺序分配，与原始标识的数字无关
	var tokens []Token
	for i := 0; i < 14; i++ {
		start := float64(i) * 0.2
		tokens = append(tokens, word(fmt.Sprintf("w%d", i), start, start+0.1, "spk_7"))
	}
	tokens = append(tokens, word("done.", 2.8, 2.9, "spk_7"))
	tokens = append(tokens, word("Next", 10.0, 10.3, "spk_2"))

	s := NewSegmenter(false)
	groups := s.Segment(tokens)

	assert.Len(t, groups[0].Segments, 2)
	assert.Equal(t, "Speaker 1", groups[0].Segments[0].SpeakerId)
	assert.Equal(t, "Speaker 2", groups[0].Segments[1].SpeakerId)
	assert.Equal(t, 2, s.SpeakerCount())
}

func TestSegmentMissingEndTimeFallsBack(t *testing.T) {
	// 最后一个词缺结束时间时，句子结束时间退回句子起始时间
	tokens := []Token{
		{Kind: KindWord, StartTime: 2.0, Text: "alone", Speaker: "spk_0"},
	}

	groups := NewSegmenter(false).Segment(tokens)

	assert.Len(t, groups, 1)
	seg := groups[0].Segments[0]
	assert.Equal(t, 2000, seg.StartMs)
	assert.Equal(t, 2000, seg.EndMs)
}

func TestSegmentChineseCleaning(t *testing.T) {
	// 中文模式下完成的句子要做空格清理
	tokens := []Token{
		word("你好", 0.0, 0.3, "spk_0"),
		punct("，"),
		word("世界", 0.5, 0.8, "spk_0"),
		punct("。"),
	}

	groups := NewSegmenter(true).Segment(tokens)

	assert.Len(t, groups, 1)
	assert.Equal(t, "你好，世界。", groups[0].Segments[0].FinalSentence)
}
