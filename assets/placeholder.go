package assets

import (
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
)

// palette tints placeholder tiles so neighbouring ids are told apart.
var palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0xe1, 0x57, 0x59, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
	{0xb0, 0x7a, 0xa1, 0xff},
	{0x9c, 0x75, 0x5f, 0xff},
}

// Placeholder builds an atlas of labelled squares for ids, used when no
// texture sheet is available.
func Placeholder(ids []int, tileSize int) *Atlas {
	a := NewAtlas(tileSize)
	for _, id := range ids {
		a.Set(id, 0, placeholderTile(id, tileSize))
	}
	return a
}

func placeholderTile(id, size int) image.Image {
	dc := gg.NewContext(size, size)
	c := palette[id%len(palette)]
	dc.SetColor(c)
	dc.DrawRoundedRectangle(2, 2, float64(size-4), float64(size-4), float64(size)/8)
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	// arrow marks rotation 0 so turned parts are readable
	s := float64(size)
	dc.MoveTo(s/2, s*0.15)
	dc.LineTo(s*0.65, s*0.3)
	dc.LineTo(s*0.35, s*0.3)
	dc.ClosePath()
	dc.Fill()
	dc.DrawStringAnchored(strconv.Itoa(id), s/2, s/2, 0.5, 0.5)
	return dc.Image()
}
