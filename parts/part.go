package parts

import "strconv"

// LayerCount is the number of z-layers parts are stored in.
const LayerCount = 2

// Part is one placed object on the grid.
type Part struct {
	X        int
	Y        int
	ObjectID int
	Layer    int
	Rotation int // quarter turns, 0..3
	Mirror   bool
	Skin     int
}

// Rules decides layer membership and pairing for object ids.
type Rules interface {
	LayerOf(id int) int
	IsFrame(id int) bool
	IsMirrorable(id int) bool
}

// NormalizeRotation wraps r into 0..3.
func NormalizeRotation(r int) int {
	return ((r % 4) + 4) % 4
}

// Handle identifies a part in a Store. Handles of removed parts never
// resolve again.
type Handle uint64

const handleIndexBits = 32

func makeHandle(index uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<handleIndexBits | uint64(index))
}

func (h Handle) index() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> handleIndexBits)
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

func (h Handle) Valid() bool {
	return h.generation() > 0
}

// PlaceResult reports what Place did. Rejections are not errors; the editor
// ignores them.
type PlaceResult int

const (
	Placed PlaceResult = iota
	RejectedOccupied
	RejectedFramePair
	RejectedInvalidID
)

func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case RejectedOccupied:
		return "cell occupied"
	case RejectedFramePair:
		return "frame pair full or duplicate"
	case RejectedInvalidID:
		return "invalid object id"
	default:
		return "unknown"
	}
}
