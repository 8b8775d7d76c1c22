package pageroutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistory(t *testing.T) {
	h := NewMemoryHistory()
	assert.Equal(t, "", h.Current())
	assert.Equal(t, 0, h.Len())
	_, ok := h.Go(-1)
	assert.False(t, ok)
	_, ok = h.Peek(0)
	assert.False(t, ok)

	h.Replace("/")
	assert.Equal(t, "/", h.Current())
	assert.Equal(t, 1, h.Len())

	h.Push("/a")
	h.Push("/b")
	p, ok := h.Go(-2)
	require.True(t, ok)
	assert.Equal(t, "/", p)

	_, ok = h.Go(-1)
	assert.False(t, ok)
	assert.Equal(t, "/", h.Current())

	p, ok = h.Peek(2)
	require.True(t, ok)
	assert.Equal(t, "/b", p)

	h.Push("/c")
	entries, idx := h.Entries()
	assert.Equal(t, 1, idx)
	require.Len(t, entries, 2)
	assert.Equal(t, "/c", entries[1].Path)
}

func TestMemoryHistoryReplace(t *testing.T) {
	h := NewMemoryHistory()
	h.Push("/")
	h.Push("/a")
	before, _ := h.Entries()
	h.Replace("/b")
	after, idx := h.Entries()
	assert.Equal(t, 1, idx)
	assert.Equal(t, "/b", after[1].Path)
	assert.NotEqual(t, before[1].Key, after[1].Key)
	assert.Equal(t, before[0], after[0])
}

func TestHistoryEntryKeysUnique(t *testing.T) {
	h := NewMemoryHistory()
	for range 5 {
		h.Push("/same")
	}
	entries, _ := h.Entries()
	seen := make(map[string]bool)
	for _, e := range entries {
		assert.NotEmpty(t, e.Key)
		assert.False(t, seen[e.Key], "duplicate key %s", e.Key)
		seen[e.Key] = true
	}
}
