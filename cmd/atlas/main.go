package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/milk9111/contraptions/assets"
)

var sourceExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".tga": true, ".webp": true}

// collect groups the part images in dir by skin, keyed by id. When no file
// is named by id, the images are numbered 1..n in file name order instead.
func collect(dir string) (map[int]map[int]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	skins := make(map[int]map[int]image.Image)
	add := func(name assets.SourceName, file string) error {
		img, err := assets.DecodeFile(filepath.Join(dir, file))
		if err != nil {
			return err
		}
		if skins[name.Skin] == nil {
			skins[name.Skin] = make(map[int]image.Image)
		}
		skins[name.Skin][name.ID] = img
		return nil
	}

	var loose []string
	for _, e := range entries {
		if e.IsDir() || !sourceExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		name, ok := assets.ParseSourceName(e.Name())
		if !ok {
			loose = append(loose, e.Name())
			continue
		}
		if err := add(name, e.Name()); err != nil {
			return nil, err
		}
	}

	if len(skins) == 0 {
		sort.Strings(loose)
		for i, file := range loose {
			if err := add(assets.SourceName{ID: i + 1}, file); err != nil {
				return nil, err
			}
		}
		return skins, nil
	}
	for _, file := range loose {
		log.Printf("skipping %s: name is not <id>[_<skin>]", file)
	}
	return skins, nil
}

// sheetPath names skin N's sheet the way the editor looks for it.
func sheetPath(out string, skin int) string {
	if skin == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), skin, ext)
}

func encode(w io.Writer, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	case ".png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

func writeSheet(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, path, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	src := flag.String("src", "parts", "folder of part images named <id>.png or <id>_<skin>.png")
	out := flag.String("out", filepath.Join("textures", "parts.png"), "output sheet (.png or .webp)")
	tileSize := flag.Int("tile", 108, "tile size in pixels")
	cols := flag.Int("cols", 0, "sheet columns (0 picks a square)")
	flag.Parse()

	skins, err := collect(*src)
	if err != nil {
		log.Fatalf("atlas: %v", err)
	}
	if len(skins[0]) == 0 {
		log.Fatalf("atlas: no default-skin images in %s", *src)
	}

	// every skin shares the default sheet's layout so ids line up
	width := *cols
	if width <= 0 {
		maxID := 0
		for _, tiles := range skins {
			for id := range tiles {
				maxID = max(maxID, id)
			}
		}
		width = assets.SheetColumns(maxID)
	}

	order := make([]int, 0, len(skins))
	for skin := range skins {
		order = append(order, skin)
	}
	sort.Ints(order)
	for _, skin := range order {
		sheet, err := assets.Pack(skins[skin], *tileSize, width)
		if err != nil {
			log.Fatalf("atlas: skin %d: %v", skin, err)
		}
		path := sheetPath(*out, skin)
		if err := writeSheet(path, sheet); err != nil {
			log.Fatalf("atlas: %v", err)
		}
		fmt.Printf("OK  skin %d: %d parts -> %s (%dx%d)\n", skin, len(skins[skin]), path, sheet.Bounds().Dx(), sheet.Bounds().Dy())
	}
}
