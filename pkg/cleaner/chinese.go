package cleaner

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// 中文文本清理使用的正则，标点集合与转录服务的输出保持一致
var (
	// 汉字或全角标点之间的空白，中文没有词间空格
	cjkGapPattern = regexp.MustCompile(`([\x{4e00}-\x{9fff}，。！？；：])\s+([\x{4e00}-\x{9fff}，。！？；：])`)
	// 标点前的空白
	spaceBeforePunct = regexp.MustCompile(`\s+([，。！？；：,.!?;:])`)
	// 标点后的连续空白
	spaceAfterPunct = regexp.MustCompile(`([，。！？；：,.!?;:])\s+`)
	// 任意连续空白
	whitespaceRun = regexp.MustCompile(`\s+`)
	// \uXXXX 转义序列
	unicodeEscapePattern = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
)

// CleanChineseText 清理中文文本：解码Unicode转义序列并按中文排版规则整理空格
//
// 清理失败时返回原始文本，绝不向调用方抛错，单句清理失败不影响整批结果。
// 对已清理过的文本重复调用结果不变。
func CleanChineseText(text string) (cleaned string) {
	original := text
	defer func() {
		if r := recover(); r != nil {
			cleaned = original
		}
	}()

	// 先把 \uXXXX 转义序列还原为中文字符
	if strings.Contains(text, `\u`) {
		text = decodeUnicodeEscapes(text)
	}

	// 去除汉字和全角标点之间的空白
	// 替换会消耗右侧字符，循环到不再变化为止
	for {
		next := cjkGapPattern.ReplaceAllString(text, "$1$2")
		if next == text {
			break
		}
		text = next
	}

	// 去除标点前的空白
	text = spaceBeforePunct.ReplaceAllString(text, "$1")

	// 标点后的连续空白压缩为一个空格，保留句子之间的分隔
	text = spaceAfterPunct.ReplaceAllString(text, "$1 ")

	// 去除首尾空白
	text = strings.TrimSpace(text)

	// 剩余的连续空白统一压缩为单个空格
	text = whitespaceRun.ReplaceAllString(text, " ")

	return text
}

// decodeUnicodeEscapes 解码文本中的 \uXXXX 转义序列
//
// 优先按JSON字符串规则整体解码（能正确处理代理对），
// 失败时退回逐个替换的宽松解码，其余内容原样保留
func decodeUnicodeEscapes(text string) string {
	var decoded string
	if err := json.Unmarshal([]byte(`"`+text+`"`), &decoded); err == nil {
		return decoded
	}

	return unicodeEscapePattern.ReplaceAllStringFunc(text, func(esc string) string {
		code, err := strconv.ParseUint(esc[2:], 16, 32)
		if err != nil {
			return esc
		}
		return string(rune(code))
	})
}
