package editor

import (
	"fmt"
	"strings"

	"github.com/milk9111/contraptions/parts"
	"github.com/milk9111/contraptions/savefile"
)

// ClipboardEntry is a copied part, positioned relative to the copied
// selection's minimum corner.
type ClipboardEntry struct {
	ObjectID int
	RelX     int
	RelY     int
	Rotation int
	Layer    int
	Mirror   bool
	Skin     int
}

// SystemClipboard carries copied parts as save-file text between editor
// instances.
type SystemClipboard interface {
	WriteText(s string) error
	ReadText() (string, error)
}

// Copy replaces the clipboard with the selection and returns the number of
// parts copied. An empty selection leaves the clipboard untouched. The error
// only reports a failed write to the system clipboard.
func (e *Editor) Copy() (int, error) {
	hs := e.Selection.Handles()
	minX, minY, _, _, ok := e.Store.Bounds(hs)
	if !ok {
		return 0, nil
	}
	entries := make([]ClipboardEntry, 0, len(hs))
	for _, h := range hs {
		p, alive := e.Store.Get(h)
		if !alive {
			continue
		}
		entries = append(entries, ClipboardEntry{
			ObjectID: p.ObjectID,
			RelX:     p.X - minX,
			RelY:     p.Y - minY,
			Rotation: p.Rotation,
			Layer:    p.Layer,
			Mirror:   p.Mirror,
			Skin:     p.Skin,
		})
	}
	e.clip = entries
	if e.system != nil {
		if err := e.system.WriteText(entriesText(entries)); err != nil {
			return len(entries), fmt.Errorf("editor: write clipboard: %w", err)
		}
	}
	return len(entries), nil
}

// Clipboard returns a copy of the clipboard entries.
func (e *Editor) Clipboard() []ClipboardEntry {
	return append([]ClipboardEntry(nil), e.clip...)
}

// Paste instantiates the clipboard with its minimum corner at (ax, ay).
// Entries whose cell is taken on their layer are skipped. The clipboard is
// kept for further pastes.
func (e *Editor) Paste(ax, ay int) []parts.Handle {
	return e.pasteEntries(e.clip, ax, ay)
}

// PasteSystem pastes save-file lines read from the system clipboard.
func (e *Editor) PasteSystem(ax, ay int) ([]parts.Handle, error) {
	if e.system == nil {
		return nil, nil
	}
	text, err := e.system.ReadText()
	if err != nil {
		return nil, fmt.Errorf("editor: read clipboard: %w", err)
	}
	res, err := savefile.Decode(strings.NewReader(text), e.rules)
	if err != nil {
		return nil, fmt.Errorf("editor: decode clipboard: %w", err)
	}
	return e.pasteEntries(entriesFromParts(res.Parts), ax, ay), nil
}

func (e *Editor) pasteEntries(entries []ClipboardEntry, ax, ay int) []parts.Handle {
	if len(entries) == 0 || e.mode == ModeDragging {
		return nil
	}
	var out []parts.Handle
	e.mutate(func() bool {
		for _, c := range entries {
			x, y := ax+c.RelX, ay+c.RelY
			if e.Store.OccupiedOnLayer(x, y, c.Layer) {
				continue
			}
			out = append(out, e.Store.Insert(parts.Part{
				X:        x,
				Y:        y,
				ObjectID: c.ObjectID,
				Layer:    c.Layer,
				Rotation: c.Rotation,
				Mirror:   c.Mirror,
				Skin:     c.Skin,
			}))
		}
		return len(out) > 0
	})
	return out
}

func entriesText(entries []ClipboardEntry) string {
	var b strings.Builder
	for _, c := range entries {
		b.WriteString(savefile.FormatLine(parts.Part{
			X:        c.RelX,
			Y:        c.RelY,
			ObjectID: c.ObjectID,
			Rotation: c.Rotation,
			Mirror:   c.Mirror,
			Skin:     c.Skin,
		}))
		b.WriteByte('\n')
	}
	return b.String()
}

func entriesFromParts(ps []parts.Part) []ClipboardEntry {
	if len(ps) == 0 {
		return nil
	}
	minX, minY := ps[0].X, ps[0].Y
	for _, p := range ps[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	out := make([]ClipboardEntry, 0, len(ps))
	for _, p := range ps {
		out = append(out, ClipboardEntry{
			ObjectID: p.ObjectID,
			RelX:     p.X - minX,
			RelY:     p.Y - minY,
			Rotation: p.Rotation,
			Layer:    p.Layer,
			Mirror:   p.Mirror,
			Skin:     p.Skin,
		})
	}
	return out
}
