package main

import (
	"fmt"
	"image/color"
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/contraptions/assets"
	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/config"
	"github.com/milk9111/contraptions/editor"
	"github.com/milk9111/contraptions/levels"
	"github.com/milk9111/contraptions/partquery"
)

// messageFrames is how long a status message stays up, at 60 TPS.
const messageFrames = 240

// Game adapts the editor core to ebiten's loop.
type Game struct {
	cfg      config.Config
	ed       *editor.Editor
	catalog  *catalog.Catalog
	atlas    *assets.Atlas
	textures *textureCache
	watcher  *catalog.Watcher
	ui       *EditorUI
	prompt   *Prompt
	input    inputReader

	gridPixel  *ebiten.Image
	showHelp   bool
	overUI     bool
	message    string
	messageTTL int
	lastPath   string
	lastQuery  string
	brushID    int
	brushSkin  int
}

func NewGame(cfg config.Config, ed *editor.Editor, cat *catalog.Catalog, atlas *assets.Atlas, watcher *catalog.Watcher) *Game {
	g := &Game{
		cfg:      cfg,
		ed:       ed,
		catalog:  cat,
		atlas:    atlas,
		textures: newTextureCache(atlas),
		watcher:  watcher,
		prompt:   NewPrompt(),
	}
	g.gridPixel = ebiten.NewImage(1, 1)
	g.gridPixel.Fill(color.White)
	g.ui = BuildEditorUI(atlas, g.textures, levels.Names(), cfg.HotbarRows, cfg.HotbarThumb, cfg.ScreenW, uiActions{
		onPart: func(id int) {
			_, skin := g.ed.Brush()
			g.ed.SetBrush(id, skin)
		},
		onSkin: func(skin int) {
			id, _ := g.ed.Brush()
			g.ed.SetBrush(id, skin)
		},
		onLevel:  g.openLevel,
		onOpen:   g.openFile,
		onSave:   g.saveFile,
		onImport: g.importFile,
		onFind:   g.findParts,
		onHelp:   func() { g.showHelp = !g.showHelp },
	})
	g.syncBrush()
	return g
}

func (g *Game) notify(format string, args ...any) {
	g.message = fmt.Sprintf(format, args...)
	g.messageTTL = messageFrames
	log.Println(g.message)
}

func (g *Game) Update() error {
	g.pollCatalog()
	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
	}

	if g.prompt.Update() {
		return nil
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.openFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.importFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.findParts()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.showHelp = !g.showHelp
	}
	if g.prompt.IsOpen() {
		// keys held when the prompt opened never see their release here
		g.ed.View.Stop()
		return nil
	}

	g.ui.UI.Update()
	g.overUI = ebuiinput.UIHovered
	g.input.read(g.ed, g.overUI)
	g.ed.Update()
	if err := g.ed.Err(); err != nil {
		g.notify("%v", err)
	}
	g.syncBrush()
	return nil
}

// syncBrush keeps the hotbar and skin panel on the editor's brush.
func (g *Game) syncBrush() {
	id, skin := g.ed.Brush()
	if id == g.brushID && skin == g.brushSkin {
		return
	}
	if id != g.brushID {
		g.ui.Hotbar.Show(id)
		g.ui.Skins.SetID(id, skin)
	}
	g.brushID, g.brushSkin = id, skin
}

func (g *Game) pollCatalog() {
	if g.watcher == nil {
		return
	}
	cat, changed, err := g.watcher.Poll()
	if err != nil {
		g.notify("catalog: %v", err)
		return
	}
	if changed {
		g.catalog = cat
		g.ed.SetRules(cat)
		g.notify("catalog reloaded")
	}
}

func (g *Game) openFile() {
	g.pickFile(pickOpen, func(path string) {
		if path == "" {
			return
		}
		res, err := g.ed.LoadFile(path)
		if err != nil {
			g.notify("open failed: %v", err)
			return
		}
		g.lastPath = path
		ebiten.SetWindowTitle("Contraption Editor - " + path)
		g.notify("loaded %d parts from %s (%d lines skipped)", len(res.Parts), path, len(res.Skipped))
	})
}

func (g *Game) saveFile() {
	g.pickFile(pickSave, func(path string) {
		if path == "" {
			return
		}
		if err := g.ed.SaveFile(path); err != nil {
			g.notify("save failed: %v", err)
			return
		}
		g.lastPath = path
		ebiten.SetWindowTitle("Contraption Editor - " + path)
		g.notify("saved %d parts to %s", g.ed.Store.Len(), path)
	})
}

func (g *Game) importFile() {
	g.pickFile(pickImport, func(path string) {
		if path == "" {
			return
		}
		hs, res, err := g.ed.ImportFile(path)
		if err != nil {
			g.notify("import failed: %v", err)
			return
		}
		g.notify("imported %d parts from %s (%d lines skipped)", len(hs), path, len(res.Skipped))
	})
}

// findParts selects the parts matching an expression typed into the prompt,
// e.g. "id == 12 && layer == 1".
func (g *Game) findParts() {
	g.prompt.Open("Select where:", g.lastQuery, func(expr string) {
		if expr == "" {
			return
		}
		g.lastQuery = expr
		q, err := partquery.Compile(expr, g.catalog)
		if err != nil {
			g.notify("%v", err)
			return
		}
		n, err := g.ed.SelectWhere(q.Match)
		if err != nil {
			g.notify("%v", err)
			return
		}
		g.notify("selected %d parts where %s", n, q)
	})
}

func (g *Game) openLevel(name string) {
	res, err := g.ed.LoadFS(levels.LevelsFS, levels.File(name))
	if err != nil {
		g.notify("level %s: %v", name, err)
		return
	}
	g.notify("loaded level %s (%d parts)", name, len(res.Parts))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawGrid(screen)
	g.drawParts(screen)
	g.ui.UI.Draw(screen)
	g.drawOverlay(screen)
	g.prompt.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ed.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
