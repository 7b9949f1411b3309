package transcript

import (
	"math"
	"strings"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/cleaner"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// 句子边界启发式的阈值
//
// 标点不能单独作为边界依据：部分转录服务会漏掉感叹句的句末标点。
// 停顿时长和说话人切换是独立的边界信号，配合最短词数避免碎句，
// 硬上限保证没有标点和停顿的输入也不会产生无限长的句子。
const (
	pauseThresholdSec  = 4.0 // 判定停顿边界的时长
	minWordsAfterPause = 20  // 停顿边界要求的最少词数
	minWordsOnTurn     = 15  // 说话人切换边界要求的最少词数
	maxSentenceWords   = 150 // 单句硬上限
)

// Segmenter 将规范化令牌流切分为带说话人信息的句子序列
//
// 状态由每次调用独立持有，调用之间互不影响
type Segmenter struct {
	IsChinese bool // 是否对完成的句子做中文文本清理

	words     []string
	startTime *float64
	speaker   string
	speakers  *SpeakerMap
	bucket    minuteBucket
}

// NewSegmenter 创建切分器
func NewSegmenter(isChinese bool) *Segmenter {
	return &Segmenter{
		IsChinese: isChinese,
		speakers:  NewSpeakerMap(),
	}
}

// SpeakerCount 返回本次切分登记的说话人数量
func (s *Segmenter) SpeakerCount() int {
	return s.speakers.Count()
}

// Segment 扫描整个令牌序列并返回按分钟分组的句子
func (s *Segmenter) Segment(tokens []Token) []models.MinuteSegment {
	w := newTokenWindow(tokens)

	for w.Next() {
		cur := w.Current()

		if cur.Kind == KindWord {
			if s.startTime == nil {
				s.openSentence(cur)
			}
			if cur.Text != "" {
				s.words = append(s.words, cur.Text)
				// 标点前瞻：直接拼接到前一个词上，不加空格
				if next, ok := w.Peek(); ok && next.Kind == KindPunctuation {
					s.words[len(s.words)-1] += next.Text
					w.Next()
				}
			}
		}

		if s.shouldBreak(w) {
			s.flush(cur)
			// 还有后续词时立即开启下一个句子
			if next, ok := w.Peek(); ok && next.Kind == KindWord {
				s.openSentence(next)
			}
		}
	}

	return s.bucket.Flush()
}

// openSentence 开启新句子：记录起始时间并登记说话人
// 说话人展示名称只在这里分配，按句子开启顺序编号
func (s *Segmenter) openSentence(tok Token) {
	start := tok.StartTime
	s.startTime = &start
	s.speaker = tok.Speaker
	s.speakers.Resolve(tok.Speaker)
}

// shouldBreak 判断当前位置是否构成句子边界
func (s *Segmenter) shouldBreak(w *tokenWindow) bool {
	if len(s.words) == 0 || s.startTime == nil {
		return false
	}

	next, ok := w.Peek()
	if !ok {
		// 流结束，剩余内容必须冲刷
		return true
	}
	if next.Kind != KindWord {
		return false
	}

	isSentenceEnd := hasTerminalPunct(s.words[len(s.words)-1])
	gap := next.StartTime - *s.startTime
	speakerChanged := next.Speaker != s.speaker

	return (isSentenceEnd && gap > pauseThresholdSec && len(s.words) >= minWordsAfterPause) ||
		(speakerChanged && isSentenceEnd && len(s.words) >= minWordsOnTurn) ||
		len(s.words) >= maxSentenceWords
}

// flush 完成当前句子并交给分钟分组器
func (s *Segmenter) flush(cur Token) {
	text := strings.Join(s.words, " ")
	if s.IsChinese {
		text = cleaner.CleanChineseText(text)
	}

	// 结束时间取当前词自身的end_time，缺失时退回句子起始时间
	endSec := *s.startTime
	if cur.HasEndTime {
		endSec = cur.EndTime
	}

	startMs := int(math.Round(*s.startTime * 1000))
	endMs := int(math.Round(endSec * 1000))

	seg := models.TranscriptionSegment{
		StartMs:       startMs,
		EndMs:         endMs,
		FinalSentence: text,
		SpeakerId:     s.speakers.Lookup(s.speaker),
		FormattedTime: utils.FormatClockTime(startMs),
	}
	s.bucket.Add(seg, int(*s.startTime/60))

	s.words = s.words[:0]
	s.startTime = nil
	s.speaker = ""
}

// hasTerminalPunct 判断词是否以句末标点结尾
func hasTerminalPunct(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?")
}
