package transcript

// tokenWindow 在令牌序列上提供"当前+前瞻"两个位置的滑动窗口，
// 避免手工维护下标造成的越界和偏移错误
type tokenWindow struct {
	tokens []Token
	pos    int
}

func newTokenWindow(tokens []Token) *tokenWindow {
	return &tokenWindow{tokens: tokens, pos: -1}
}

// Next 前进到下一个令牌，序列耗尽时返回false
func (w *tokenWindow) Next() bool {
	if w.pos+1 >= len(w.tokens) {
		w.pos = len(w.tokens)
		return false
	}
	w.pos++
	return true
}

// Current 返回当前令牌，只能在Next返回true后调用
func (w *tokenWindow) Current() Token {
	return w.tokens[w.pos]
}

// Peek 返回下一个令牌（如果还有）
func (w *tokenWindow) Peek() (Token, bool) {
	if w.pos+1 < len(w.tokens) {
		return w.tokens[w.pos+1], true
	}
	return Token{}, false
}
