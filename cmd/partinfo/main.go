package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/contraptions/assets"
	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/levels"
	"github.com/milk9111/contraptions/partquery"
	"github.com/milk9111/contraptions/savefile"
)

// readContraption decodes a file from disk, or a bundled level when the
// name starts with "level:".
func readContraption(name string, cat *catalog.Catalog) (savefile.Result, error) {
	var (
		f   fs.File
		err error
	)
	if lvl, ok := strings.CutPrefix(name, "level:"); ok {
		f, err = levels.LevelsFS.Open(levels.File(lvl))
	} else {
		f, err = os.Open(name)
	}
	if err != nil {
		return savefile.Result{}, err
	}
	defer f.Close()
	return savefile.Decode(f, cat)
}

func thumbPath(dir, name string) string {
	base := strings.TrimPrefix(filepath.Base(name), "level:")
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".png")
}

func main() {
	catalogPath := flag.String("catalog", "", "YAML part catalog")
	atlasPath := flag.String("atlas", "", "texture sheet for thumbnails")
	tileSize := flag.Int("tile", 108, "texture sheet tile size in pixels")
	pngDir := flag.String("png", "", "write a PNG thumbnail per file into this folder")
	cell := flag.Int("cell", 24, "thumbnail cell size in pixels")
	top := flag.Int("top", 15, "ids listed per file (0 for all)")
	where := flag.String("where", "", `only count parts matching a tengo expression, e.g. "layer == 1 && id != 12"`)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: partinfo [flags] file.contraption... | level:<name>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		loaded, err := catalog.Load(*catalogPath)
		if err != nil {
			log.Fatalf("partinfo: %v", err)
		}
		cat = loaded
	}
	var atlas *assets.Atlas
	if *atlasPath != "" {
		a, err := assets.LoadSkins(*atlasPath, *tileSize)
		if err != nil {
			log.Printf("partinfo: %v; thumbnails use plain squares", err)
		} else {
			atlas = a
		}
	}

	var query *partquery.Query
	if *where != "" {
		q, err := partquery.Compile(*where, cat)
		if err != nil {
			log.Fatalf("partinfo: %v", err)
		}
		query = q
	}

	failed := 0
	for _, name := range flag.Args() {
		res, err := readContraption(name, cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", name, err)
			failed++
			continue
		}
		if query != nil {
			if res.Parts, err = query.Filter(res.Parts); err != nil {
				fmt.Fprintf(os.Stderr, "ERR %s: %v\n", name, err)
				failed++
				continue
			}
		}
		fmt.Println(render(summarize(name, res, cat), *top))

		if *pngDir == "" || len(res.Parts) == 0 {
			continue
		}
		dc, err := thumbnail(res.Parts, atlas, *cell)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", name, err)
			failed++
			continue
		}
		if err := os.MkdirAll(*pngDir, 0755); err != nil {
			log.Fatalf("partinfo: %v", err)
		}
		out := thumbPath(*pngDir, name)
		if err := dc.SavePNG(out); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", out, err)
			failed++
			continue
		}
		fmt.Printf("thumbnail -> %s\n", out)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
