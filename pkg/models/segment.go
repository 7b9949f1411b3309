package models

// TranscriptionSegment 表示切分后的一个句子片段，包含展示用的时间信息
type TranscriptionSegment struct {
	StartMs       int    `json:"StartMs"`       // 句子开始时间（毫秒）
	EndMs         int    `json:"EndMs"`         // 句子结束时间（毫秒）
	FinalSentence string `json:"FinalSentence"` // 最终句子文本
	SpeakerId     string `json:"SpeakerId"`     // 说话人展示名称，如 "Speaker 1"
	FormattedTime string `json:"FormattedTime"` // 开始时间的 HH:MM:SS 形式
}

// MinuteSegment 表示同一分钟内的句子分组，用于分页展示
type MinuteSegment struct {
	Minute   int                    `json:"minute"`   // 分钟序号（起始时间/60取整）
	Segments []TranscriptionSegment `json:"segments"` // 该分钟内的句子序列
}

// FlatSegment 扁平化后的句子片段，去掉分钟分组和FormattedTime，用于存储
type FlatSegment struct {
	StartMs       int    `json:"StartMs"`
	EndMs         int    `json:"EndMs"`
	FinalSentence string `json:"FinalSentence"`
	SpeakerId     string `json:"SpeakerId"`
}
