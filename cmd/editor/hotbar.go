package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Hotbar is the paged grid of part thumbnails along the bottom of the
// window. Clicking a slot picks that id as the brush.
type Hotbar struct {
	Container *widget.Container

	grid     *widget.Container
	page     *widget.Label
	slots    map[int]*widget.Container
	thumbs   map[int]*ebiten.Image
	textures *textureCache
	ids      []int
	rows     int
	perRow   int
	thumb    int
	current  int
	selected int
	onSelect func(id int)

	idle, picked *image.NineSlice
}

// NewHotbar lays ids out rows high, fitting as many columns as width allows.
func NewHotbar(ids []int, textures *textureCache, rows, thumb, width int, fontFace *text.Face, theme *widget.Theme, onSelect func(id int)) *Hotbar {
	if rows <= 0 {
		rows = 1
	}
	perRow := (width - 160) / (thumb + 6)
	if perRow < 1 {
		perRow = 1
	}
	if need := (len(ids) + rows - 1) / rows; need < perRow {
		perRow = max(need, 1)
	}
	h := &Hotbar{
		slots:    make(map[int]*widget.Container),
		thumbs:   make(map[int]*ebiten.Image),
		textures: textures,
		ids:      ids,
		rows:     rows,
		perRow:   perRow,
		thumb:    thumb,
		onSelect: onSelect,
		idle:     solidNineSlice(slotColor),
		picked:   solidNineSlice(slotPickColor),
	}
	h.grid = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(perRow),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)
	h.page = widget.NewLabel(widget.LabelOpts.Text("", fontFace, labelColor))

	pager := func(label string, step int) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonText),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, thumb)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				h.SetPage(h.current + step)
			}),
		)
	}

	h.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	h.Container.AddChild(pager("<", -1))
	h.Container.AddChild(h.grid)
	h.Container.AddChild(pager(">", 1))
	h.Container.AddChild(h.page)
	h.SetPage(0)
	return h
}

func (h *Hotbar) pageSize() int {
	return h.rows * h.perRow
}

// Pages is the number of hotbar pages.
func (h *Hotbar) Pages() int {
	return max(1, (len(h.ids)+h.pageSize()-1)/h.pageSize())
}

// SetPage shows page n, wrapping around at either end.
func (h *Hotbar) SetPage(n int) {
	pages := h.Pages()
	n %= pages
	if n < 0 {
		n += pages
	}
	h.current = n
	h.grid.RemoveChildren()
	clear(h.slots)
	start := n * h.pageSize()
	end := min(start+h.pageSize(), len(h.ids))
	for _, id := range h.ids[start:end] {
		h.grid.AddChild(h.slot(id))
	}
	h.page.Label = fmt.Sprintf("%d/%d", n+1, pages)
	h.Select(h.selected)
}

func (h *Hotbar) slot(id int) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(h.idle),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(h.thumb+4, h.thumb+4)),
	)
	g := widget.NewGraphic(
		widget.GraphicOpts.Image(h.thumbnail(id)),
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(h.thumb, h.thumb),
			widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
				h.Select(id)
				if h.onSelect != nil {
					h.onSelect(id)
				}
			}),
		),
	)
	c.AddChild(g)
	h.slots[id] = c
	return c
}

// thumbnail scales the id's default-skin texture down to the slot size.
func (h *Hotbar) thumbnail(id int) *ebiten.Image {
	if img, ok := h.thumbs[id]; ok {
		return img
	}
	img := ebiten.NewImage(h.thumb, h.thumb)
	if tex := h.textures.Get(id, 0); tex != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(h.thumb)/float64(tex.Bounds().Dx()), float64(h.thumb)/float64(tex.Bounds().Dy()))
		op.Filter = ebiten.FilterLinear
		img.DrawImage(tex, op)
	}
	h.thumbs[id] = img
	return img
}

// Select highlights id's slot if it is on the current page.
func (h *Hotbar) Select(id int) {
	if prev, ok := h.slots[h.selected]; ok {
		prev.SetBackgroundImage(h.idle)
	}
	h.selected = id
	if cur, ok := h.slots[id]; ok {
		cur.SetBackgroundImage(h.picked)
	}
}

// Show turns to the page holding id and highlights it.
func (h *Hotbar) Show(id int) {
	for i, v := range h.ids {
		if v == id {
			if p := i / h.pageSize(); p != h.current {
				h.selected = id
				h.SetPage(p)
				return
			}
			h.Select(id)
			return
		}
	}
}
