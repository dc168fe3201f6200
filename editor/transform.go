package editor

import (
	"github.com/milk9111/contraptions/grid"
	"github.com/milk9111/contraptions/parts"
)

func (e *Editor) selectionCenter(hs []parts.Handle) (cx, cy int, ok bool) {
	minX, minY, maxX, maxY, ok := e.Store.Bounds(hs)
	if !ok {
		return 0, 0, false
	}
	return grid.FloorDiv(minX+maxX, 2), grid.FloorDiv(minY+maxY, 2), true
}

// recenter shifts hs so their bounding-box center is back at (cx, cy).
func (e *Editor) recenter(hs []parts.Handle, cx, cy int, vertical bool) {
	nx, ny, ok := e.selectionCenter(hs)
	if !ok {
		return
	}
	dx, dy := cx-nx, 0
	if vertical {
		dy = cy - ny
	}
	if dx == 0 && dy == 0 {
		return
	}
	for _, h := range hs {
		e.Store.Update(h, func(p *parts.Part) {
			p.X += dx
			p.Y += dy
		})
	}
}

// RotateSelection turns the selection a quarter turn around its bounding-box
// center, (dx, dy) to (dy, -dx). Each part's own rotation advances by one.
func (e *Editor) RotateSelection() bool {
	if e.mode == ModeDragging {
		return false
	}
	hs := e.Selection.Handles()
	cx, cy, ok := e.selectionCenter(hs)
	if !ok {
		return false
	}
	e.checkpoint()
	for _, h := range hs {
		e.Store.Update(h, func(p *parts.Part) {
			dx, dy := p.X-cx, p.Y-cy
			p.X = cx + dy
			p.Y = cy - dx
			p.Rotation++
		})
	}
	e.recenter(hs, cx, cy, true)
	return true
}

// FlipSelection mirrors the selection horizontally across its center
// column.
func (e *Editor) FlipSelection() bool {
	if e.mode == ModeDragging {
		return false
	}
	hs := e.Selection.Handles()
	cx, cy, ok := e.selectionCenter(hs)
	if !ok {
		return false
	}
	e.checkpoint()
	for _, h := range hs {
		e.Store.Update(h, func(p *parts.Part) {
			p.X = 2*cx - p.X
			if e.rules != nil && e.rules.IsMirrorable(p.ObjectID) {
				p.Mirror = !p.Mirror
			}
			p.Rotation = e.flipRotation(p.ObjectID, p.Rotation)
		})
	}
	e.recenter(hs, cx, cy, false)
	return true
}

// flipRotation maps a rotation through a horizontal flip. Diagonal parts are
// a half turn off the plain mapping.
func (e *Editor) flipRotation(id, r int) int {
	r = (4 - parts.NormalizeRotation(r)) % 4
	if e.rules != nil && e.rules.IsDiagonal(id) {
		r += 2
	}
	return parts.NormalizeRotation(r)
}
