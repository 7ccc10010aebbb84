package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, string]()
	m.Put("a", "1")
	m.Put("b", "2")
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	m.Delete("a")
	m.Delete("missing")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Range(func(key string, value string) bool {
		m.Delete(key)
		return true
	})
	assert.Equal(t, 0, m.Len())
}
