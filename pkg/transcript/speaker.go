package transcript

import "fmt"

// SpeakerMap 将原始说话人标识映射为稳定的展示名称
//
// 只在句子开启时登记说话人，按登记顺序依次分配 "Speaker 1"、"Speaker 2"……
// 已登记的标识永远返回同一名称。每次引擎调用各自持有一个映射，不跨调用共享。
type SpeakerMap struct {
	labels map[string]string
	next   int
}

// NewSpeakerMap 创建空的说话人映射
func NewSpeakerMap() *SpeakerMap {
	return &SpeakerMap{
		labels: make(map[string]string),
		next:   1,
	}
}

// Resolve 返回原始标识对应的展示名称，首次出现时分配新编号
func (m *SpeakerMap) Resolve(raw string) string {
	if label, ok := m.labels[raw]; ok {
		return label
	}
	label := fmt.Sprintf("Speaker %d", m.next)
	m.labels[raw] = label
	m.next++
	return label
}

// Lookup 查询已登记的展示名称，未登记时返回缺省的 "Speaker 1"
func (m *SpeakerMap) Lookup(raw string) string {
	if label, ok := m.labels[raw]; ok {
		return label
	}
	return "Speaker 1"
}

// Count 返回已登记的说话人数量
func (m *SpeakerMap) Count() int {
	return len(m.labels)
}
