package parts

type slot struct {
	part  Part
	gen   uint32
	alive bool
}

// Store owns every placed part. Parts live in slots addressed by Handle and
// are ordered per layer by insertion.
type Store struct {
	rules   Rules
	slots   []slot
	free    []uint32
	layers  [LayerCount][]Handle
	nextGen uint32
}

// NewStore creates an empty store that derives layers from rules.
func NewStore(rules Rules) *Store {
	return &Store{rules: rules, nextGen: 1}
}

// Rules returns the id rules the store places by.
func (s *Store) Rules() Rules {
	return s.rules
}

// SetRules swaps the id rules. Parts already placed keep their layer.
func (s *Store) SetRules(r Rules) {
	if r != nil {
		s.rules = r
	}
}

// Place puts a new part at (x, y) when the occupancy rules allow it.
func (s *Store) Place(x, y, id, skin int) (Handle, PlaceResult) {
	if id <= 0 || skin < 0 {
		return 0, RejectedInvalidID
	}
	layer := s.layerOf(id)
	if s.rules != nil && s.rules.IsFrame(id) {
		if r := s.checkFrame(x, y, id, layer); r != Placed {
			return 0, r
		}
	} else if s.OccupiedOnLayer(x, y, layer) {
		return 0, RejectedOccupied
	}
	h := s.Insert(Part{X: x, Y: y, ObjectID: id, Layer: layer, Skin: skin})
	return h, Placed
}

// checkFrame applies the paired-frame rule: an empty cell takes either half,
// a cell with one half takes only the other, a full pair takes nothing.
func (s *Store) checkFrame(x, y, id, layer int) PlaceResult {
	count := 0
	for _, h := range s.layers[layer] {
		p := s.slots[h.index()].part
		if p.X != x || p.Y != y {
			continue
		}
		if !s.rules.IsFrame(p.ObjectID) {
			return RejectedOccupied
		}
		if p.ObjectID == id {
			return RejectedFramePair
		}
		count++
	}
	if count >= 2 {
		return RejectedFramePair
	}
	return Placed
}

func (s *Store) layerOf(id int) int {
	if s.rules == nil {
		return 1
	}
	l := s.rules.LayerOf(id)
	if l < 0 || l >= LayerCount {
		return LayerCount - 1
	}
	return l
}

// Insert adds p without checking occupancy. Layer is clamped to a valid
// layer and rotation normalized.
func (s *Store) Insert(p Part) Handle {
	if p.Layer < 0 || p.Layer >= LayerCount {
		p.Layer = s.layerOf(p.ObjectID)
	}
	p.Rotation = NormalizeRotation(p.Rotation)

	gen := s.nextGen
	s.nextGen++
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx] = slot{part: p, gen: gen, alive: true}
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{part: p, gen: gen, alive: true})
	}
	h := makeHandle(idx, gen)
	s.layers[p.Layer] = append(s.layers[p.Layer], h)
	return h
}

// Alive reports whether h refers to a part still in the store.
func (s *Store) Alive(h Handle) bool {
	if s == nil || !h.Valid() {
		return false
	}
	idx := h.index()
	if int(idx) >= len(s.slots) {
		return false
	}
	sl := s.slots[idx]
	return sl.alive && sl.gen == h.generation()
}

// Get returns a copy of the part behind h.
func (s *Store) Get(h Handle) (Part, bool) {
	if !s.Alive(h) {
		return Part{}, false
	}
	return s.slots[h.index()].part, true
}

// Update mutates the part behind h in place. Layer changes are ignored.
func (s *Store) Update(h Handle, fn func(p *Part)) bool {
	if !s.Alive(h) || fn == nil {
		return false
	}
	p := &s.slots[h.index()].part
	layer := p.Layer
	fn(p)
	p.Layer = layer
	p.Rotation = NormalizeRotation(p.Rotation)
	return true
}

// Move sets the grid position of h.
func (s *Store) Move(h Handle, x, y int) bool {
	return s.Update(h, func(p *Part) {
		p.X = x
		p.Y = y
	})
}

// Delete removes a single part.
func (s *Store) Delete(h Handle) bool {
	if !s.Alive(h) {
		return false
	}
	idx := h.index()
	layer := s.slots[idx].part.Layer
	s.slots[idx] = slot{}
	s.free = append(s.free, idx)
	s.layers[layer] = removeHandle(s.layers[layer], h)
	return true
}

func removeHandle(list []Handle, h Handle) []Handle {
	for i, v := range list {
		if v == h {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Remove clears every part at (x, y) on all layers and returns what it removed.
func (s *Store) Remove(x, y int) []Handle {
	removed := s.Query(x, y)
	for _, h := range removed {
		s.Delete(h)
	}
	return removed
}

// Query returns the parts at (x, y), layer-major then insertion order.
func (s *Store) Query(x, y int) []Handle {
	var out []Handle
	for layer := 0; layer < LayerCount; layer++ {
		for _, h := range s.layers[layer] {
			p := s.slots[h.index()].part
			if p.X == x && p.Y == y {
				out = append(out, h)
			}
		}
	}
	return out
}

// OccupiedOnLayer reports whether any part sits at (x, y) on layer.
func (s *Store) OccupiedOnLayer(x, y, layer int) bool {
	if layer < 0 || layer >= LayerCount {
		return false
	}
	for _, h := range s.layers[layer] {
		p := s.slots[h.index()].part
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// RotateAt turns the first part at (x, y) back one quarter.
func (s *Store) RotateAt(x, y int) bool {
	hs := s.Query(x, y)
	if len(hs) == 0 {
		return false
	}
	return s.Update(hs[0], func(p *Part) {
		p.Rotation--
	})
}

// MirrorAt toggles the mirror flag of the first mirrorable part at (x, y).
func (s *Store) MirrorAt(x, y int) bool {
	for _, h := range s.Query(x, y) {
		p := s.slots[h.index()].part
		if s.rules != nil && s.rules.IsMirrorable(p.ObjectID) {
			return s.Update(h, func(p *Part) {
				p.Mirror = !p.Mirror
			})
		}
	}
	return false
}

// Len returns the number of parts in the store.
func (s *Store) Len() int {
	n := 0
	for _, l := range s.layers {
		n += len(l)
	}
	return n
}

// Layer returns the handles on one layer in insertion order.
func (s *Store) Layer(layer int) []Handle {
	if layer < 0 || layer >= LayerCount {
		return nil
	}
	return append([]Handle(nil), s.layers[layer]...)
}

// All returns every handle, layer-major then insertion order.
func (s *Store) All() []Handle {
	out := make([]Handle, 0, s.Len())
	for _, l := range s.layers {
		out = append(out, l...)
	}
	return out
}

// Parts returns copies of every part in All order.
func (s *Store) Parts() []Part {
	out := make([]Part, 0, s.Len())
	for _, l := range s.layers {
		for _, h := range l {
			out = append(out, s.slots[h.index()].part)
		}
	}
	return out
}

// Each calls fn for every part in All order. fn must not mutate the store.
func (s *Store) Each(fn func(h Handle, p Part)) {
	for _, l := range s.layers {
		for _, h := range l {
			fn(h, s.slots[h.index()].part)
		}
	}
}

// Clear removes every part.
func (s *Store) Clear() {
	s.slots = nil
	s.free = nil
	for i := range s.layers {
		s.layers[i] = nil
	}
}

// Bounds returns the min/max grid coordinates of the live parts in hs.
func (s *Store) Bounds(hs []Handle) (minX, minY, maxX, maxY int, ok bool) {
	for _, h := range hs {
		p, alive := s.Get(h)
		if !alive {
			continue
		}
		if !ok {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			ok = true
			continue
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, ok
}

// Snapshot is a deep copy of a store's contents for undo.
type Snapshot struct {
	slots  []slot
	free   []uint32
	layers [LayerCount][]Handle
}

// Snapshot captures the current contents. Handles stay valid across a
// Restore of the same snapshot.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		slots: append([]slot(nil), s.slots...),
		free:  append([]uint32(nil), s.free...),
	}
	for i := range s.layers {
		snap.layers[i] = append([]Handle(nil), s.layers[i]...)
	}
	return snap
}

// Restore replaces the contents with snap. Generations keep counting up so
// handles issued after the snapshot never alias restored parts.
func (s *Store) Restore(snap Snapshot) {
	s.slots = append([]slot(nil), snap.slots...)
	s.free = append([]uint32(nil), snap.free...)
	for i := range s.layers {
		s.layers[i] = append([]Handle(nil), snap.layers[i]...)
	}
}
