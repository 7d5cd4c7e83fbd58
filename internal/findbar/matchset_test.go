package findbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSet(t *testing.T) {
	m := NewMatchSet()
	for _, line := range []int{40, 10, 30, 10} {
		m.Add(line)
	}

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []int{10, 30, 40}, m.Lines())
	assert.True(t, m.Contains(30))
	assert.False(t, m.Contains(20))

	below, ok := m.Below(30)
	assert.True(t, ok)
	assert.Equal(t, 10, below)
	_, ok = m.Below(10)
	assert.False(t, ok)

	above, ok := m.Above(30)
	assert.True(t, ok)
	assert.Equal(t, 40, above)

	assert.Equal(t, []int{10, 30}, m.Within(10, 39))
	assert.Nil(t, m.Within(41, 100))

	m.Clear()
	assert.Zero(t, m.Len())
}
