package editor

import "github.com/milk9111/contraptions/parts"

// DefaultMaxUndo is how many store snapshots are kept.
const DefaultMaxUndo = 100

// History is a bounded stack of store snapshots.
type History struct {
	stack []parts.Snapshot
	max   int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultMaxUndo
	}
	return &History{max: max}
}

// Push stores snap, dropping the oldest entry past the limit.
func (h *History) Push(snap parts.Snapshot) {
	h.stack = append(h.stack, snap)
	if len(h.stack) > h.max {
		// drop oldest
		h.stack = h.stack[1:]
	}
}

// Pop removes and returns the latest snapshot.
func (h *History) Pop() (parts.Snapshot, bool) {
	n := len(h.stack)
	if n == 0 {
		return parts.Snapshot{}, false
	}
	snap := h.stack[n-1]
	h.stack = h.stack[:n-1]
	return snap, true
}

func (h *History) Len() int {
	return len(h.stack)
}

func (h *History) Clear() {
	h.stack = nil
}
