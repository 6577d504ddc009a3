package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackHistory_Empty(t *testing.T) {
	h := NewStackHistory()

	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestStackHistory_PushAndBack(t *testing.T) {
	h := NewStackHistory()
	h.Push(HistoryEntry{Page: PageAuth})
	h.Push(HistoryEntry{Page: PageHome})
	h.Push(HistoryEntry{Page: PageLeaderboard})

	e, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, PageHome, e.Page)

	e, ok = h.Back()
	require.True(t, ok)
	assert.Equal(t, PageAuth, e.Page)

	// Oldest entry: the cursor stays put.
	_, ok = h.Back()
	assert.False(t, ok)
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, PageAuth, cur.Page)
}

func TestStackHistory_ForwardAfterBack(t *testing.T) {
	h := NewStackHistory()
	h.Push(HistoryEntry{Page: PageAuth})
	h.Push(HistoryEntry{Page: PageHome})

	_, ok := h.Back()
	require.True(t, ok)

	e, ok := h.Forward()
	require.True(t, ok)
	assert.Equal(t, PageHome, e.Page)

	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestStackHistory_PushDiscardsForwardEntries(t *testing.T) {
	h := NewStackHistory()
	h.Push(HistoryEntry{Page: PageAuth})
	h.Push(HistoryEntry{Page: PageHome})
	h.Push(HistoryEntry{Page: PageLeaderboard})

	_, _ = h.Back()
	_, _ = h.Back()
	h.Push(HistoryEntry{Page: PageInfo})

	_, ok := h.Forward()
	assert.False(t, ok)

	e, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, PageAuth, e.Page)
}

func TestStackHistory_Replace(t *testing.T) {
	h := NewStackHistory()

	// Replace into an empty stack behaves like a push.
	h.Replace(HistoryEntry{Page: PageSplash})
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, PageSplash, cur.Page)

	h.Replace(HistoryEntry{Page: PageHome})
	cur, ok = h.Current()
	require.True(t, ok)
	assert.Equal(t, PageHome, cur.Page)

	_, ok = h.Back()
	assert.False(t, ok)
}
