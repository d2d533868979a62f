package engine

// historyCapacity bounds the commit-history buffer.
const historyCapacity = 20

// History is a bounded buffer of committed text segments.
type History struct {
	entries []string
}

// NewHistory creates an empty commit history.
func NewHistory() *History {
	return &History{}
}

// Push records a committed segment. Empty segments are ignored.
func (h *History) Push(text string) {
	if text == "" {
		return
	}
	h.entries = append(h.entries, text)
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[len(h.entries)-historyCapacity:]
	}
}

// Latest returns the most recent committed segment, or "" when empty.
func (h *History) Latest() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Clear empties the history.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Len returns the number of retained segments.
func (h *History) Len() int {
	return len(h.entries)
}
