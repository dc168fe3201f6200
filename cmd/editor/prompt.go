package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pickMode int

const (
	pickOpen pickMode = iota
	pickSave
	pickImport
)

func (m pickMode) title() string {
	switch m {
	case pickSave:
		return "Save contraption"
	case pickImport:
		return "Import parts"
	default:
		return "Open contraption"
	}
}

// Prompt is a one-line modal text input. While open it takes all keyboard
// input; Enter submits and Escape cancels without calling back.
type Prompt struct {
	open    bool
	label   string
	input   []rune
	chars   []rune
	onEnter func(string)
	back    *ebiten.Image
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = []rune(initial)
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = p.input[:0]
	p.onEnter = nil
}

// Update reports whether the prompt consumed this frame's input.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input = append(p.input, r)
	}
	if repeatPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		cur := string(p.input)
		fn := p.onEnter
		p.Close()
		if fn != nil {
			fn(cur)
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
	}
	return true
}

// repeatPressed fires on press and then repeats while the key is held.
func repeatPressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 30 && d%4 == 0)
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if p.back == nil || p.back.Bounds().Dx() != sw {
		p.back = ebiten.NewImage(sw, 48)
		p.back.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 0xaa})
	}
	o := &ebiten.DrawImageOptions{}
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(p.back, o)
	ebitenutil.DebugPrintAt(screen, p.label+" "+string(p.input)+"_", 16, sh/2-8)
	ebitenutil.DebugPrintAt(screen, "Enter to confirm, Esc to cancel", 16, sh/2+8)
}
