package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/milk9111/contraptions/assets"
	"github.com/milk9111/contraptions/parts"
)

var (
	thumbBackground = color.RGBA{0x00, 0x07, 0x68, 0xff}
	thumbGrid       = color.RGBA{100, 100, 100, 255}
	frameFill       = color.RGBA{140, 110, 70, 255}
	partFill        = color.RGBA{90, 160, 220, 255}
)

// thumbnail renders the parts onto a gg context, cell pixels per cell, with
// a one-cell margin. Parts with a texture in atlas are drawn with it;
// the rest become labelled squares.
func thumbnail(ps []parts.Part, atlas *assets.Atlas, cell int) (*gg.Context, error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("nothing to draw")
	}
	minX, minY, maxX, maxY := ps[0].X, ps[0].Y, ps[0].X, ps[0].Y
	for _, p := range ps[1:] {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	w := (maxX - minX + 3) * cell
	h := (maxY - minY + 3) * cell

	dc := gg.NewContext(w, h)
	dc.SetColor(thumbBackground)
	dc.Clear()
	dc.SetColor(thumbGrid)
	dc.SetLineWidth(1)
	for x := 0; x <= w; x += cell {
		dc.DrawLine(float64(x)+0.5, 0, float64(x)+0.5, float64(h))
	}
	for y := 0; y <= h; y += cell {
		dc.DrawLine(0, float64(y)+0.5, float64(w), float64(y)+0.5)
	}
	dc.Stroke()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    math.Max(6, float64(cell)/4),
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for layer := 0; layer < parts.LayerCount; layer++ {
		for _, p := range ps {
			if p.Layer != layer {
				continue
			}
			x := float64((p.X - minX + 1) * cell)
			y := float64((p.Y - minY + 1) * cell)
			drawThumbPart(dc, p, atlas, x, y, float64(cell))
		}
	}
	return dc, nil
}

func drawThumbPart(dc *gg.Context, p parts.Part, atlas *assets.Atlas, x, y, size float64) {
	half := size / 2
	if atlas != nil {
		if tile, ok := atlas.Tile(p.ObjectID, p.Skin); ok {
			tw := float64(tile.Bounds().Dx())
			dc.Push()
			dc.Translate(x+half, y+half)
			dc.Rotate(-float64(parts.NormalizeRotation(p.Rotation)) * math.Pi / 2)
			if p.Mirror {
				dc.Scale(-1, 1)
			}
			dc.Scale(size/tw, size/tw)
			dc.DrawImageAnchored(tile, 0, 0, 0.5, 0.5)
			dc.Pop()
			return
		}
	}
	fill := partFill
	if p.Layer == 0 {
		fill = frameFill
	}
	dc.SetColor(fill)
	dc.DrawRectangle(x+1, y+1, size-2, size-2)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawStringAnchored(strconv.Itoa(p.ObjectID), x+half, y+half, 0.5, 0.5)
}
