package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/contraptions/assets"
	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/config"
	"github.com/milk9111/contraptions/editor"
	"github.com/milk9111/contraptions/levels"
	"github.com/milk9111/contraptions/savefile"
)

// placeholderParts is how many ids get a placeholder tile when the catalog
// names none.
const placeholderParts = 64

func placeholderIDs(cat *catalog.Catalog) []int {
	if ids := cat.NamedIDs(); len(ids) > 0 {
		return ids
	}
	ids := make([]int, placeholderParts)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	atlasPath := flag.String("atlas", "", "part texture sheet (skins are read from sheet_N siblings)")
	catalogPath := flag.String("catalog", "", "YAML part catalog; watched for changes")
	level := flag.String("level", "", "bundled contraption to open at start")
	open := flag.String("open", "", "contraption file to open at start")
	saveDir := flag.String("dir", "", "folder the file picker starts in")
	tileSize := flag.Int("tile", 0, "texture sheet tile size in pixels")
	listLevels := flag.Bool("levels", false, "list bundled contraptions and exit")
	flag.Parse()

	if *listLevels {
		for _, name := range levels.Names() {
			fmt.Println(name)
		}
		return
	}

	log.Println("Editor starting...")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{
		Atlas:    *atlasPath,
		Catalog:  *catalogPath,
		SaveDir:  *saveDir,
		TileSize: *tileSize,
	})
	if cfg.SaveDir == "" {
		cfg.SaveDir = savefile.DefaultSaveDir()
	}

	cat := catalog.Default()
	var watcher *catalog.Watcher
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
		cat = loaded
		if watcher, err = catalog.NewWatcher(cfg.Catalog); err != nil {
			log.Printf("catalog watch disabled: %v", err)
			watcher = nil
		}
	}

	atlas, err := assets.LoadSkins(cfg.Atlas, cfg.TileSize)
	if err != nil {
		log.Printf("texture sheet unavailable, using placeholders: %v", err)
		atlas = assets.Placeholder(placeholderIDs(cat), cfg.TileSize)
	}
	log.Printf("loaded %d part textures", atlas.Len())

	var clip editor.SystemClipboard
	if sys, err := newSystemClipboard(); err != nil {
		log.Printf("system clipboard unavailable: %v", err)
	} else {
		clip = sys
	}

	ed := editor.New(editor.Config{
		View:      cfg.NewView(),
		Rules:     cat,
		Clipboard: clip,
		MaxUndo:   cfg.MaxUndo,
		QueueSize: cfg.QueueSize,
		ScreenW:   cfg.ScreenW,
		ScreenH:   cfg.ScreenH,
	})
	if ids := atlas.IDs(); len(ids) > 0 {
		ed.SetBrush(ids[0], 0)
	}

	switch {
	case *open != "":
		if _, err := ed.LoadFile(*open); err != nil {
			log.Printf("failed to open %s: %v", *open, err)
		}
	case *level != "":
		if _, err := ed.LoadFS(levels.LevelsFS, levels.File(*level)); err != nil {
			log.Printf("failed to open level %s: %v", *level, err)
		}
	}

	game := NewGame(cfg, ed, cat, atlas, watcher)
	if watcher != nil {
		defer watcher.Close()
	}

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Contraption Editor")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
