package cli

// HistoryEntry is one navigation record. The payload is just the page id;
// everything else a page shows is recomputed from current state on entry.
type HistoryEntry struct {
	Page Page
}

// History is the navigation-stack collaborator of the router. The router
// core never assumes a host platform; it only needs push/replace plus
// cursor movement for back/forward.
type History interface {
	// Push appends an entry after the cursor, discarding any forward
	// entries, and moves the cursor to it.
	Push(e HistoryEntry)

	// Replace overwrites the entry at the cursor (or pushes into an empty
	// stack).
	Replace(e HistoryEntry)

	// Back moves the cursor one entry back. It reports false when already
	// at the oldest entry; the cursor then stays put.
	Back() (HistoryEntry, bool)

	// Forward moves the cursor one entry forward. It reports false when
	// there is nothing ahead.
	Forward() (HistoryEntry, bool)

	// Current returns the entry at the cursor.
	Current() (HistoryEntry, bool)
}

// StackHistory is the in-process History used by the CLI.
type StackHistory struct {
	entries []HistoryEntry
	pos     int
}

// NewStackHistory returns an empty history.
func NewStackHistory() *StackHistory {
	return &StackHistory{pos: -1}
}

func (h *StackHistory) Push(e HistoryEntry) {
	h.entries = append(h.entries[:h.pos+1], e)
	h.pos = len(h.entries) - 1
}

func (h *StackHistory) Replace(e HistoryEntry) {
	if h.pos < 0 {
		h.Push(e)
		return
	}
	h.entries[h.pos] = e
}

func (h *StackHistory) Back() (HistoryEntry, bool) {
	if h.pos <= 0 {
		return HistoryEntry{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

func (h *StackHistory) Forward() (HistoryEntry, bool) {
	if h.pos < 0 || h.pos >= len(h.entries)-1 {
		return HistoryEntry{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

func (h *StackHistory) Current() (HistoryEntry, bool) {
	if h.pos < 0 {
		return HistoryEntry{}, false
	}
	return h.entries[h.pos], true
}
