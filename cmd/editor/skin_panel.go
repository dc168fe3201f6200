package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/contraptions/assets"
)

// SkinPanel lists the skins the brush id has as a radio group.
type SkinPanel struct {
	Container *widget.Container

	buttons  *widget.Container
	group    *widget.RadioGroup
	atlas    *assets.Atlas
	theme    *widget.Theme
	fontFace *text.Face
	onSelect func(skin int)
}

func newSkinPanel(atlas *assets.Atlas, theme *widget.Theme, fontFace *text.Face, onSelect func(skin int)) *SkinPanel {
	p := &SkinPanel{
		atlas:    atlas,
		theme:    theme,
		fontFace: fontFace,
		onSelect: onSelect,
	}
	p.buttons = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(2),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)
	p.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	p.Container.AddChild(widget.NewLabel(widget.LabelOpts.Text("Skin", fontFace, labelColor)))
	p.Container.AddChild(p.buttons)
	return p
}

// SetID rebuilds the buttons for id's skins and marks skin as active.
func (p *SkinPanel) SetID(id, skin int) {
	p.buttons.RemoveChildren()
	skins := p.atlas.Skins(id)
	if len(skins) == 0 {
		skins = []int{0}
	}
	elements := make([]widget.RadioGroupElement, 0, len(skins))
	var active *widget.Button
	for _, s := range skins {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(p.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(fmt.Sprint(s), p.fontFace, buttonText),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, 28)),
		)
		if s == skin {
			active = btn
		}
		p.buttons.AddChild(btn)
		elements = append(elements, btn)
	}
	p.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, el := range elements {
				if args.Active == el && p.onSelect != nil {
					p.onSelect(skins[i])
					return
				}
			}
		}),
	)
	if active != nil {
		p.group.SetActive(active)
	}
}
