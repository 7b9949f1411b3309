package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeakerMapResolve(t *testing.T) {
	m := NewSpeakerMap()

	// 按首次出现顺序分配编号
	assert.Equal(t, "Speaker 1", m.Resolve("spk_3"))
	assert.Equal(t, "Speaker 2", m.Resolve("spk_0"))

	// 已登记的标识返回同一名称
	assert.Equal(t, "Speaker 1", m.Resolve("spk_3"))
	assert.Equal(t, 2, m.Count())
}

func TestSpeakerMapLookup(t *testing.T) {
	m := NewSpeakerMap()
	m.Resolve("spk_0")

	assert.Equal(t, "Speaker 1", m.Lookup("spk_0"))
	// 未登记的标识返回缺省名称
	assert.Equal(t, "Speaker 1", m.Lookup("spk_99"))
}
