package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/contraptions/parts"
)

var (
	backgroundColor = color.RGBA{0x00, 0x07, 0x68, 0xff}
	gridLineColor   = color.RGBA{100, 100, 100, 255}
	selectionColor  = color.RGBA{255, 255, 0, 255}
	marqueeColor    = color.RGBA{255, 255, 255, 255}
	hoverColor      = color.RGBA{255, 255, 255, 90}
	missingColor    = color.RGBA{200, 60, 200, 200}
)

var helpLines = []string{
	"Controls:",
	"WASD - Move camera",
	"Arrow Up/Down - Zoom in/out",
	"Left Click - Place part / drag selection",
	"Right Click - Remove part",
	"Ctrl + Left Drag - Select area",
	"R / T - Rotate / mirror part under cursor",
	"Shift+R / Shift+T - Rotate / flip selection",
	"Delete - Delete selection",
	"Esc - Clear selection",
	"Ctrl+A - Select all",
	"Ctrl+F - Select parts matching an expression",
	"Ctrl+C - Copy selected parts",
	"Ctrl+V - Paste copied parts",
	"Ctrl+Shift+V - Paste from system clipboard",
	"Ctrl+Z - Undo",
	"Ctrl+O - Load file",
	"Ctrl+S - Save file",
	"Ctrl+I - Load parts from file",
	"F1 - Toggle help",
}

func (g *Game) fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.gridPixel, op)
}

func (g *Game) strokeRect(screen *ebiten.Image, r image.Rectangle, width int, c color.Color) {
	g.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	g.fillRect(screen, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	g.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	g.fillRect(screen, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	v := g.ed.View
	c := v.EffectiveCellSize()
	// lines are skipped when zoomed out far enough to become a solid fill
	if c < 4 {
		return
	}
	for x := mod(-v.OffsetX, c); x < w; x += c {
		g.fillRect(screen, image.Rect(x, 0, x+1, h), gridLineColor)
	}
	for y := mod(-v.OffsetY, c); y < h; y += c {
		g.fillRect(screen, image.Rect(0, y, w, y+1), gridLineColor)
	}
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// drawPart scales the part's texture to its cell, mirrors it, then turns it
// counter-clockwise a quarter per rotation step.
func (g *Game) drawPart(screen *ebiten.Image, p parts.Part, cell image.Rectangle) {
	tex := g.textures.Get(p.ObjectID, p.Skin)
	if tex == nil {
		g.fillRect(screen, cell.Inset(cell.Dx()/6), missingColor)
		return
	}
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(tw)/2, -float64(th)/2)
	if p.Mirror {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Rotate(-float64(parts.NormalizeRotation(p.Rotation)) * math.Pi / 2)
	op.GeoM.Scale(float64(cell.Dx())/float64(tw), float64(cell.Dy())/float64(th))
	op.GeoM.Translate(float64(cell.Min.X)+float64(cell.Dx())/2, float64(cell.Min.Y)+float64(cell.Dy())/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

func (g *Game) drawParts(screen *ebiten.Image) {
	bounds := screen.Bounds()
	v := g.ed.View
	g.ed.Store.Each(func(h parts.Handle, p parts.Part) {
		cell := v.CellRect(p.X, p.Y)
		if !cell.Overlaps(bounds) {
			return
		}
		g.drawPart(screen, p, cell)
	})
	for _, h := range g.ed.Selection.Handles() {
		p, ok := g.ed.Store.Get(h)
		if !ok {
			continue
		}
		g.strokeRect(screen, v.CellRect(p.X, p.Y), 3, selectionColor)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	if r, ok := g.ed.MarqueeRect(); ok {
		g.strokeRect(screen, r, 1, marqueeColor)
	} else if !g.overUI {
		g.fillRect(screen, g.ed.View.CellRect(g.ed.CursorCell()), hoverColor)
	}

	gx, gy := g.ed.CursorCell()
	id, skin := g.ed.Brush()
	status := fmt.Sprintf("%s (id %d, skin %d)  cell %d,%d  parts %d  selected %d  zoom %.2f  %s",
		g.catalog.Name(id), id, skin, gx, gy, g.ed.Store.Len(), g.ed.Selection.Len(), g.ed.View.Zoom, g.ed.Mode())
	ebitenutil.DebugPrintAt(screen, status, 200, 20)
	ebitenutil.DebugPrintAt(screen, "Press F1 to show controls", 200, 4)
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, 200, 36)
	}

	if g.showHelp {
		h := len(helpLines)*18 + 16
		g.fillRect(screen, image.Rect(0, 0, 360, h), color.RGBA{0, 0, 0, 0xaa})
		for i, line := range helpLines {
			ebitenutil.DebugPrintAt(screen, line, 10, 8+i*18)
		}
	}
}
