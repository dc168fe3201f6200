package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/contraptions/editor"
)

var keyMap = map[ebiten.Key]editor.Key{
	ebiten.KeyW:         editor.KeyW,
	ebiten.KeyA:         editor.KeyA,
	ebiten.KeyS:         editor.KeyS,
	ebiten.KeyD:         editor.KeyD,
	ebiten.KeyArrowUp:   editor.KeyArrowUp,
	ebiten.KeyArrowDown: editor.KeyArrowDown,
	ebiten.KeyR:         editor.KeyR,
	ebiten.KeyT:         editor.KeyT,
	ebiten.KeyC:         editor.KeyC,
	ebiten.KeyV:         editor.KeyV,
	ebiten.KeyZ:         editor.KeyZ,
	ebiten.KeyDelete:    editor.KeyDelete,
	ebiten.KeyBackspace: editor.KeyDelete,
	ebiten.KeyEscape:    editor.KeyEscape,
}

var buttonMap = map[ebiten.MouseButton]editor.Button{
	ebiten.MouseButtonLeft:   editor.ButtonLeft,
	ebiten.MouseButtonRight:  editor.ButtonRight,
	ebiten.MouseButtonMiddle: editor.ButtonMiddle,
}

func currentMods() editor.Mod {
	var m editor.Mod
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= editor.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= editor.ModShift
	}
	return m
}

// inputReader turns this frame's ebiten input into editor events.
type inputReader struct {
	keys   []ebiten.Key
	cursor image.Point
}

// read queues key and pointer events. Presses over the UI are left to the
// UI; releases always go through so a gesture can't get stuck.
func (r *inputReader) read(ed *editor.Editor, overUI bool) {
	mods := currentMods()

	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		if ek, ok := keyMap[k]; ok {
			r.push(ed, editor.KeyDown(ek, mods))
		}
	}
	r.keys = inpututil.AppendJustReleasedKeys(r.keys[:0])
	for _, k := range r.keys {
		if ek, ok := keyMap[k]; ok {
			r.push(ed, editor.KeyUp(ek))
		}
	}

	x, y := ebiten.CursorPosition()
	if pt := image.Pt(x, y); pt != r.cursor {
		r.cursor = pt
		r.push(ed, editor.PointerMove(x, y))
	}
	for mb, b := range buttonMap {
		if !overUI && inpututil.IsMouseButtonJustPressed(mb) {
			r.push(ed, editor.PointerDown(x, y, b, mods))
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			r.push(ed, editor.PointerUp(x, y, b))
		}
	}
}

func (r *inputReader) push(ed *editor.Editor, evt editor.Event) {
	if err := ed.Push(evt); err != nil {
		log.Printf("input dropped: %v", err)
	}
}
