package transcript

// 原始转录项的类型取值
const (
	itemTypePronunciation = "pronunciation"
	itemTypePunctuation   = "punctuation"

	// 缺省说话人标识，转录服务未开启话者分离时使用
	defaultSpeakerLabel = "spk_0"
)

// TokenKind 标记规范化令牌的类型
type TokenKind int

const (
	KindWord TokenKind = iota // 词
	KindPunctuation           // 标点，逻辑上附着在前一个词上
)

// Token 规范化后的转录令牌
type Token struct {
	Kind       TokenKind
	StartTime  float64 // 开始时间（秒）
	EndTime    float64 // 结束时间（秒）
	HasEndTime bool    // 原始项中是否带有结束时间
	Text       string  // 文本内容，候选为空时为空串
	Speaker    string  // 原始说话人标识，仅对词有意义
}

// TranscriptResult 转录服务输出的JSON结构
type TranscriptResult struct {
	Results struct {
		Items []Item `json:"items"`
	} `json:"results"`
}

// Item 转录结果中的单个词或标点条目
type Item struct {
	Type         string        `json:"type"`                    // "pronunciation" 或 "punctuation"
	StartTime    string        `json:"start_time,omitempty"`    // 十进制秒字符串，标点条目没有
	EndTime      string        `json:"end_time,omitempty"`      // 十进制秒字符串
	Alternatives []Alternative `json:"alternatives"`            // 候选内容，只使用第一个
	SpeakerLabel string        `json:"speaker_label,omitempty"` // 原始说话人标识
}

// Alternative 候选识别内容
type Alternative struct {
	Content string `json:"content"`
}
