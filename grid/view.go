package grid

import "image"

const (
	DefaultCellSize  = 50
	DefaultMoveSpeed = 5
	DefaultZoomSpeed = 0.02
	DefaultMinZoom   = 0.1
	DefaultMaxZoom   = 5.0
)

// View is the pannable, zoomable window onto the infinite grid, plus the
// held-key flags that move it each tick.
type View struct {
	OffsetX int
	OffsetY int
	Zoom    float64

	CellSize  int
	MoveSpeed int
	ZoomSpeed float64
	MinZoom   float64
	MaxZoom   float64

	MovingUp    bool
	MovingDown  bool
	MovingLeft  bool
	MovingRight bool
	ZoomingIn   bool
	ZoomingOut  bool
}

// NewView returns a view at the origin with default speeds and limits.
func NewView() *View {
	return &View{
		Zoom:      1.0,
		CellSize:  DefaultCellSize,
		MoveSpeed: DefaultMoveSpeed,
		ZoomSpeed: DefaultZoomSpeed,
		MinZoom:   DefaultMinZoom,
		MaxZoom:   DefaultMaxZoom,
	}
}

// EffectiveCellSize is the on-screen cell size in pixels at the current zoom.
func (v *View) EffectiveCellSize() int {
	c := int(float64(v.CellSize) * v.Zoom)
	if c < 1 {
		return 1
	}
	return c
}

// ScreenToGrid maps a screen pixel to the cell containing it.
func (v *View) ScreenToGrid(sx, sy int) (int, int) {
	c := v.EffectiveCellSize()
	return FloorDiv(sx+v.OffsetX, c), FloorDiv(sy+v.OffsetY, c)
}

// GridToScreen returns the top-left screen pixel of a cell.
func (v *View) GridToScreen(gx, gy int) (int, int) {
	c := v.EffectiveCellSize()
	return gx*c - v.OffsetX, gy*c - v.OffsetY
}

// CellRect is the screen rectangle covered by a cell.
func (v *View) CellRect(gx, gy int) image.Rectangle {
	x, y := v.GridToScreen(gx, gy)
	c := v.EffectiveCellSize()
	return image.Rect(x, y, x+c, y+c)
}

// VisibleCells returns the inclusive cell range covering a screen of w×h.
func (v *View) VisibleCells(w, h int) (minX, minY, maxX, maxY int) {
	minX, minY = v.ScreenToGrid(0, 0)
	maxX, maxY = v.ScreenToGrid(w-1, h-1)
	return minX, minY, maxX, maxY
}

// SetZoom sets the zoom factor, clamped to the view's limits.
func (v *View) SetZoom(z float64) {
	if z < v.MinZoom {
		z = v.MinZoom
	}
	if z > v.MaxZoom {
		z = v.MaxZoom
	}
	v.Zoom = z
}

// Tick advances pan and zoom by one frame for every held flag.
func (v *View) Tick() {
	if v.MovingUp {
		v.OffsetY -= v.MoveSpeed
	}
	if v.MovingDown {
		v.OffsetY += v.MoveSpeed
	}
	if v.MovingLeft {
		v.OffsetX -= v.MoveSpeed
	}
	if v.MovingRight {
		v.OffsetX += v.MoveSpeed
	}
	if v.ZoomingIn {
		v.SetZoom(v.Zoom + v.ZoomSpeed)
	}
	if v.ZoomingOut {
		v.SetZoom(v.Zoom - v.ZoomSpeed)
	}
}

// Stop releases every held movement and zoom flag.
func (v *View) Stop() {
	v.MovingUp, v.MovingDown, v.MovingLeft, v.MovingRight = false, false, false, false
	v.ZoomingIn, v.ZoomingOut = false, false
}

// CenterOn pans so the middle of the given cell range sits at the middle of
// a screen of w×h pixels.
func (v *View) CenterOn(minX, minY, maxX, maxY, w, h int) {
	c := float64(v.EffectiveCellSize())
	cx := float64(minX+maxX) / 2
	cy := float64(minY+maxY) / 2
	v.OffsetX = int(cx*c - float64(w)/2)
	v.OffsetY = int(cy*c - float64(h)/2)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
