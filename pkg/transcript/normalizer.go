package transcript

import (
	"fmt"
	"strconv"
)

// InvalidItemError 表示转录输入中的条目字段缺失或无法解析
type InvalidItemError struct {
	Index int    // 条目在输入中的位置
	Field string // 出错的字段名
	Value string // 原始字段值
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("转录输入格式错误: 第%d项的%s字段无效: %q", e.Index, e.Field, e.Value)
}

// NormalizeItems 将原始转录条目规范化为Token序列
//
// 词条目的start_time缺失或无法解析、end_time存在但无法解析时整批失败，
// 不产生部分结果：所有边界判断都依赖时间信息。
// 候选内容为空的词保留为空文本令牌，时间仍参与边界计算。
func NormalizeItems(items []Item) ([]Token, error) {
	tokens := make([]Token, 0, len(items))

	for i, item := range items {
		tok := Token{Speaker: defaultSpeakerLabel}
		if item.SpeakerLabel != "" {
			tok.Speaker = item.SpeakerLabel
		}
		if len(item.Alternatives) > 0 {
			tok.Text = item.Alternatives[0].Content
		}

		if item.Type == itemTypePunctuation {
			tok.Kind = KindPunctuation
			// 标点没有start_time，时间不参与边界计算，解析失败时忽略
			if item.EndTime != "" {
				if end, err := strconv.ParseFloat(item.EndTime, 64); err == nil {
					tok.EndTime = end
					tok.HasEndTime = true
				}
			}
			tokens = append(tokens, tok)
			continue
		}

		tok.Kind = KindWord
		if item.StartTime == "" {
			return nil, &InvalidItemError{Index: i, Field: "start_time", Value: item.StartTime}
		}
		start, err := strconv.ParseFloat(item.StartTime, 64)
		if err != nil {
			return nil, &InvalidItemError{Index: i, Field: "start_time", Value: item.StartTime}
		}
		tok.StartTime = start

		if item.EndTime != "" {
			end, err := strconv.ParseFloat(item.EndTime, 64)
			if err != nil {
				return nil, &InvalidItemError{Index: i, Field: "end_time", Value: item.EndTime}
			}
			tok.EndTime = end
			tok.HasEndTime = true
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}
