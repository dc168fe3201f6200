package editor

import (
	"image"

	"github.com/milk9111/contraptions/grid"
	"github.com/milk9111/contraptions/parts"
)

// Rules is the id table the editor places and transforms by.
type Rules interface {
	parts.Rules
	IsDiagonal(id int) bool
}

// Mode is the pointer gesture in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModeMarquee
	ModeDragging
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMarquee:
		return "selecting"
	case ModeDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Config sizes an Editor. Zero values fall back to defaults.
type Config struct {
	View      *grid.View
	Rules     Rules
	Clipboard SystemClipboard
	MaxUndo   int
	QueueSize int
	ScreenW   int
	ScreenH   int
}

type dragStart struct {
	h    parts.Handle
	x, y int
}

// Editor is the grid editing core: it owns the part store, the selection,
// the clipboard and the view, and applies queued input once per tick.
type Editor struct {
	View      *grid.View
	Store     *parts.Store
	Selection *Selection

	rules   Rules
	queue   *Queue
	history *History
	system  SystemClipboard
	clip    []ClipboardEntry

	mode         Mode
	marqueeStart image.Point
	marqueeEnd   image.Point
	dragCell     image.Point
	dragOrigin   []dragStart
	dragSnap     parts.Snapshot

	brushID   int
	brushSkin int
	pointer   image.Point
	screenW   int
	screenH   int
	err       error
}

func New(cfg Config) *Editor {
	view := cfg.View
	if view == nil {
		view = grid.NewView()
	}
	w, h := cfg.ScreenW, cfg.ScreenH
	if w <= 0 || h <= 0 {
		w, h = 1600, 900
	}
	return &Editor{
		View:      view,
		Store:     parts.NewStore(cfg.Rules),
		Selection: NewSelection(),
		rules:     cfg.Rules,
		queue:     NewQueue(cfg.QueueSize),
		history:   NewHistory(cfg.MaxUndo),
		system:    cfg.Clipboard,
		brushID:   1,
		screenW:   w,
		screenH:   h,
	}
}

// SetRules swaps the id table, e.g. after the catalog file changed.
func (e *Editor) SetRules(r Rules) {
	if r == nil {
		return
	}
	e.rules = r
	e.Store.SetRules(r)
}

func (e *Editor) Rules() Rules {
	return e.rules
}

// SetScreenSize records the window size used to center the view.
func (e *Editor) SetScreenSize(w, h int) {
	if w > 0 && h > 0 {
		e.screenW, e.screenH = w, h
	}
}

// SetBrush picks the object id and skin left clicks place.
func (e *Editor) SetBrush(id, skin int) {
	if id > 0 {
		e.brushID = id
	}
	if skin >= 0 {
		e.brushSkin = skin
	}
}

func (e *Editor) Brush() (id, skin int) {
	return e.brushID, e.brushSkin
}

func (e *Editor) Mode() Mode {
	return e.mode
}

// Pointer returns the last pointer position in screen pixels.
func (e *Editor) Pointer() image.Point {
	return e.pointer
}

// CursorCell is the grid cell under the pointer.
func (e *Editor) CursorCell() (int, int) {
	return e.View.ScreenToGrid(e.pointer.X, e.pointer.Y)
}

// MarqueeRect is the normalized screen rectangle of an active marquee.
func (e *Editor) MarqueeRect() (image.Rectangle, bool) {
	if e.mode != ModeMarquee {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: e.marqueeStart, Max: e.marqueeEnd}.Canon(), true
}

// Err returns and clears the last error raised while handling a key.
func (e *Editor) Err() error {
	err := e.err
	e.err = nil
	return err
}

// Push queues an input event for the next Update.
func (e *Editor) Push(evt Event) error {
	return e.queue.Push(evt)
}

// Update applies every queued event, then advances the view one tick.
func (e *Editor) Update() {
	for _, evt := range e.queue.Drain() {
		e.Handle(evt)
	}
	e.View.Tick()
}

// Handle applies a single event immediately.
func (e *Editor) Handle(evt Event) {
	switch evt.Kind {
	case EventKeyDown:
		e.keyDown(evt.Key, evt.Mods)
	case EventKeyUp:
		e.keyUp(evt.Key)
	case EventPointerDown:
		e.PointerDown(evt.X, evt.Y, evt.Button, evt.Mods)
	case EventPointerMove:
		e.PointerMove(evt.X, evt.Y)
	case EventPointerUp:
		e.PointerUp(evt.X, evt.Y, evt.Button)
	}
}

func (e *Editor) keyDown(k Key, mods Mod) {
	ctrl := mods.Has(ModCtrl)
	shift := mods.Has(ModShift)
	if ctrl {
		switch k {
		case KeyC:
			if _, err := e.Copy(); err != nil {
				e.err = err
			}
		case KeyV:
			x, y := e.CursorCell()
			if shift {
				if _, err := e.PasteSystem(x, y); err != nil {
					e.err = err
				}
			} else {
				e.Paste(x, y)
			}
		case KeyZ:
			e.Undo()
		case KeyA:
			e.SelectAll()
		}
		return
	}
	switch k {
	case KeyW:
		e.View.MovingUp = true
	case KeyS:
		e.View.MovingDown = true
	case KeyA:
		e.View.MovingLeft = true
	case KeyD:
		e.View.MovingRight = true
	case KeyArrowUp:
		e.View.ZoomingIn = true
	case KeyArrowDown:
		e.View.ZoomingOut = true
	case KeyR:
		if shift {
			e.RotateSelection()
		} else {
			e.RotateAt(e.CursorCell())
		}
	case KeyT:
		if shift {
			e.FlipSelection()
		} else {
			e.MirrorAt(e.CursorCell())
		}
	case KeyDelete:
		e.DeleteSelection()
	case KeyEscape:
		e.ClearSelection()
	}
}

func (e *Editor) keyUp(k Key) {
	switch k {
	case KeyW:
		e.View.MovingUp = false
	case KeyS:
		e.View.MovingDown = false
	case KeyA:
		e.View.MovingLeft = false
	case KeyD:
		e.View.MovingRight = false
	case KeyArrowUp:
		e.View.ZoomingIn = false
	case KeyArrowDown:
		e.View.ZoomingOut = false
	}
}

// PointerDown starts a marquee (ctrl+left), a drag (unmodified left on a
// selected part), a placement (left elsewhere) or a cell clear (right).
func (e *Editor) PointerDown(sx, sy int, b Button, mods Mod) {
	e.pointer = image.Pt(sx, sy)
	if e.mode != ModeIdle {
		return
	}
	gx, gy := e.View.ScreenToGrid(sx, sy)
	switch b {
	case ButtonLeft:
		if mods.Has(ModCtrl) {
			e.mode = ModeMarquee
			e.marqueeStart = e.pointer
			e.marqueeEnd = e.pointer
			e.Selection.Clear()
			return
		}
		if mods == 0 && e.selectedAt(gx, gy) {
			e.beginDrag(gx, gy)
			return
		}
		e.Place(gx, gy)
	case ButtonRight:
		e.Remove(gx, gy)
	}
}

// PointerMove updates the marquee or the dragged parts.
func (e *Editor) PointerMove(sx, sy int) {
	e.pointer = image.Pt(sx, sy)
	switch e.mode {
	case ModeMarquee:
		e.marqueeEnd = e.pointer
	case ModeDragging:
		gx, gy := e.View.ScreenToGrid(sx, sy)
		dx, dy := gx-e.dragCell.X, gy-e.dragCell.Y
		for _, d := range e.dragOrigin {
			e.Store.Move(d.h, d.x+dx, d.y+dy)
		}
	}
}

// PointerUp finishes the active gesture.
func (e *Editor) PointerUp(sx, sy int, b Button) {
	if b != ButtonLeft {
		e.pointer = image.Pt(sx, sy)
		return
	}
	e.PointerMove(sx, sy)
	switch e.mode {
	case ModeMarquee:
		e.finishMarquee()
	case ModeDragging:
		e.finishDrag()
	}
	e.mode = ModeIdle
}

func (e *Editor) selectedAt(gx, gy int) bool {
	for _, h := range e.Selection.Handles() {
		if p, ok := e.Store.Get(h); ok && p.X == gx && p.Y == gy {
			return true
		}
	}
	return false
}

func (e *Editor) beginDrag(gx, gy int) {
	e.dragSnap = e.Store.Snapshot()
	e.mode = ModeDragging
	e.dragCell = image.Pt(gx, gy)
	e.dragOrigin = e.dragOrigin[:0]
	for _, h := range e.Selection.Handles() {
		if p, ok := e.Store.Get(h); ok {
			e.dragOrigin = append(e.dragOrigin, dragStart{h: h, x: p.X, y: p.Y})
		}
	}
}

// finishDrag keeps the positions as they are; overlaps are not resolved.
func (e *Editor) finishDrag() {
	moved := false
	for _, d := range e.dragOrigin {
		if p, ok := e.Store.Get(d.h); ok && (p.X != d.x || p.Y != d.y) {
			moved = true
			break
		}
	}
	if moved {
		e.history.Push(e.dragSnap)
	}
	e.dragSnap = parts.Snapshot{}
	e.dragOrigin = e.dragOrigin[:0]
}

func (e *Editor) finishMarquee() {
	r := image.Rectangle{Min: e.marqueeStart, Max: e.marqueeEnd}.Canon()
	x0, y0 := e.View.ScreenToGrid(r.Min.X, r.Min.Y)
	x1, y1 := e.View.ScreenToGrid(r.Max.X, r.Max.Y)
	e.SelectRect(x0, y0, x1, y1)
}

// SelectRect adds every part inside the inclusive cell rectangle, in store
// order.
func (e *Editor) SelectRect(x0, y0, x1, y1 int) int {
	added := 0
	e.Store.Each(func(h parts.Handle, p parts.Part) {
		if p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1 && e.Selection.Add(h) {
			added++
		}
	})
	return added
}

// SelectAll selects every part in the store.
func (e *Editor) SelectAll() {
	if e.mode != ModeIdle {
		return
	}
	e.Selection.Clear()
	for _, h := range e.Store.All() {
		e.Selection.Add(h)
	}
}

// SelectWhere replaces the selection with every part match accepts and
// returns how many were selected. An error from match stops the scan and
// leaves the selection unchanged.
func (e *Editor) SelectWhere(match func(p parts.Part) (bool, error)) (int, error) {
	if e.mode != ModeIdle {
		return 0, nil
	}
	var hs []parts.Handle
	var err error
	e.Store.Each(func(h parts.Handle, p parts.Part) {
		if err != nil {
			return
		}
		var ok bool
		if ok, err = match(p); ok {
			hs = append(hs, h)
		}
	})
	if err != nil {
		return 0, err
	}
	e.Select(hs)
	return len(hs), nil
}

// ClearSelection empties the selection and cancels a marquee.
func (e *Editor) ClearSelection() {
	if e.mode == ModeDragging {
		return
	}
	e.mode = ModeIdle
	e.Selection.Clear()
}

// Select replaces the selection with hs.
func (e *Editor) Select(hs []parts.Handle) {
	e.Selection.Clear()
	for _, h := range hs {
		if e.Store.Alive(h) {
			e.Selection.Add(h)
		}
	}
}

// Place puts the brush part at a cell. Rejections leave everything as is.
func (e *Editor) Place(gx, gy int) parts.PlaceResult {
	var res parts.PlaceResult
	e.mutate(func() bool {
		_, res = e.Store.Place(gx, gy, e.brushID, e.brushSkin)
		return res == parts.Placed
	})
	return res
}

// Remove clears a cell on every layer.
func (e *Editor) Remove(gx, gy int) int {
	n := 0
	e.mutate(func() bool {
		n = len(e.Store.Remove(gx, gy))
		return n > 0
	})
	if n > 0 {
		e.Selection.Prune(e.Store)
	}
	return n
}

// RotateAt turns the first part in a cell.
func (e *Editor) RotateAt(gx, gy int) bool {
	return e.mutate(func() bool { return e.Store.RotateAt(gx, gy) })
}

// MirrorAt flips the first mirrorable part in a cell.
func (e *Editor) MirrorAt(gx, gy int) bool {
	return e.mutate(func() bool { return e.Store.MirrorAt(gx, gy) })
}

// DeleteSelection removes every selected part and empties the selection.
func (e *Editor) DeleteSelection() int {
	if e.mode == ModeDragging {
		return 0
	}
	n := 0
	e.mutate(func() bool {
		for _, h := range e.Selection.Handles() {
			if e.Store.Delete(h) {
				n++
			}
		}
		return n > 0
	})
	e.Selection.Clear()
	return n
}

// Undo restores the store to before the last change.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.Store.Restore(snap)
	e.mode = ModeIdle
	e.dragOrigin = e.dragOrigin[:0]
	e.dragSnap = parts.Snapshot{}
	e.Selection.Prune(e.Store)
	return true
}

// UndoDepth is the number of changes Undo can revert.
func (e *Editor) UndoDepth() int {
	return e.history.Len()
}

func (e *Editor) checkpoint() {
	e.history.Push(e.Store.Snapshot())
}

// mutate records an undo step for fn, only when fn changed something.
func (e *Editor) mutate(fn func() bool) bool {
	snap := e.Store.Snapshot()
	if !fn() {
		return false
	}
	e.history.Push(snap)
	return true
}

// Focus centers the view on the given parts.
func (e *Editor) Focus(hs []parts.Handle) bool {
	minX, minY, maxX, maxY, ok := e.Store.Bounds(hs)
	if !ok {
		return false
	}
	e.View.CenterOn(minX, minY, maxX, maxY, e.screenW, e.screenH)
	return true
}
