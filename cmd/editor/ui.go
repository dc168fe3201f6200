package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/contraptions/assets"
)

// uiActions are the callbacks the panels raise.
type uiActions struct {
	onPart   func(id int)
	onSkin   func(skin int)
	onLevel  func(name string)
	onOpen   func()
	onSave   func()
	onImport func()
	onFind   func()
	onHelp   func()
}

// EditorUI holds the widgets Game updates after building.
type EditorUI struct {
	UI     *ebitenui.UI
	Hotbar *Hotbar
	Skins  *SkinPanel
}

func BuildEditorUI(atlas *assets.Atlas, textures *textureCache, levelNames []string, rows, thumb, width int, act uiActions) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	hotbar := NewHotbar(atlas.IDs(), textures, rows, thumb, width, &fontFace, ui.PrimaryTheme, act.onPart)
	skins := newSkinPanel(atlas, ui.PrimaryTheme, &fontFace, act.onSkin)
	toolbar := buildToolBar(ui.PrimaryTheme, &fontFace, act)
	rightPanel := buildRightPanel(&fontFace, skins, levelNames, act.onLevel)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	hotbar.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(hotbar.Container)
	root.AddChild(rightPanel)
	root.AddChild(toolbar)
	ui.Container = root

	return &EditorUI{UI: ui, Hotbar: hotbar, Skins: skins}
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, act uiActions) *widget.Container {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 36),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
	)
	add := func(name string, fn func()) {
		toolbar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(name, fontFace, buttonText),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}
	add("Open", act.onOpen)
	add("Save", act.onSave)
	add("Import", act.onImport)
	add("Find", act.onFind)
	add("Help", act.onHelp)
	return toolbar
}

func buildRightPanel(fontFace *text.Face, skins *SkinPanel, levelNames []string, onLevel func(name string)) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 200),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	panel.AddChild(skins.Container)
	if len(levelNames) == 0 {
		return panel
	}

	entries := make([]any, 0, len(levelNames))
	for _, n := range levelNames {
		entries = append(entries, n)
	}
	panel.AddChild(widget.NewLabel(widget.LabelOpts.Text("Levels", fontFace, labelColor)))
	panel.AddChild(widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			name, _ := e.(string)
			return name
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if name, ok := args.Entry.(string); ok && onLevel != nil {
				onLevel(name)
			}
		}),
		widget.ListOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 160))),
	))
	return panel
}
