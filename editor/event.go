package editor

import "errors"

// EventKind tags which fields of an Event are meaningful.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

// Key is an input key the editor binds. The window layer translates its own
// key codes into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyR
	KeyT
	KeyC
	KeyV
	KeyZ
	KeyDelete
	KeyEscape
)

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
)

func (m Mod) Has(o Mod) bool {
	return m&o == o
}

// Event is one input event. X and Y are screen pixels for pointer events.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	Mods   Mod
	X, Y   int
}

func KeyDown(k Key, mods Mod) Event {
	return Event{Kind: EventKeyDown, Key: k, Mods: mods}
}

func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

func PointerDown(x, y int, b Button, mods Mod) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, Button: b, Mods: mods}
}

func PointerMove(x, y int) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

func PointerUp(x, y int, b Button) Event {
	return Event{Kind: EventPointerUp, X: x, Y: y, Button: b}
}

// ErrQueueFull is returned by Push when the queue is at capacity. The event
// is dropped.
var ErrQueueFull = errors.New("editor: event queue full")

// DefaultQueueSize bounds the events buffered between two updates.
const DefaultQueueSize = 256

// Queue is a bounded FIFO of input events drained once per tick.
type Queue struct {
	items []Event
	limit int
}

func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &Queue{items: make([]Event, 0, limit), limit: limit}
}

// Push adds an event.
func (q *Queue) Push(evt Event) error {
	if len(q.items) >= q.limit {
		return ErrQueueFull
	}
	q.items = append(q.items, evt)
	return nil
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Event, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

func (q *Queue) Len() int {
	return len(q.items)
}
