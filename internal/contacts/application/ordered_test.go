package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	m := newOrderedMap[string]()
	assert.Equal(t, 1, m.nextID())
	assert.Empty(t, m.all())

	m.put(3, "c")
	m.put(1, "a")
	m.put(7, "g")
	assert.Equal(t, 8, m.nextID())
	assert.Equal(t, []string{"c", "a", "g"}, m.all())

	m.put(1, "A")
	assert.Equal(t, []string{"c", "A", "g"}, m.all(), "replacing keeps position")
	assert.Equal(t, 3, m.len())

	v, ok := m.get(7)
	assert.True(t, ok)
	assert.Equal(t, "g", v)
	_, ok = m.get(2)
	assert.False(t, ok)
	assert.True(t, m.has(3))

	assert.Equal(t, []string{"c", "g"}, m.filter(func(s string) bool { return s != "A" }))
}
