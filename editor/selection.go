package editor

import "github.com/milk9111/contraptions/parts"

// Selection is an ordered set of part handles. It does not own the parts.
type Selection struct {
	order []parts.Handle
	index map[parts.Handle]struct{}
}

func NewSelection() *Selection {
	return &Selection{index: make(map[parts.Handle]struct{})}
}

// Add appends h unless it is already selected.
func (s *Selection) Add(h parts.Handle) bool {
	if _, ok := s.index[h]; ok {
		return false
	}
	s.index[h] = struct{}{}
	s.order = append(s.order, h)
	return true
}

func (s *Selection) Contains(h parts.Handle) bool {
	_, ok := s.index[h]
	return ok
}

// Handles returns the selection in the order parts were added.
func (s *Selection) Handles() []parts.Handle {
	return append([]parts.Handle(nil), s.order...)
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) Clear() {
	s.order = s.order[:0]
	clear(s.index)
}

// Prune drops handles that no longer resolve in store.
func (s *Selection) Prune(store *parts.Store) int {
	kept := s.order[:0]
	dropped := 0
	for _, h := range s.order {
		if store.Alive(h) {
			kept = append(kept, h)
			continue
		}
		delete(s.index, h)
		dropped++
	}
	s.order = kept
	return dropped
}
