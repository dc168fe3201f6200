package assets

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// SourceName is a part image file named after its id and optional skin,
// e.g. "12.png" or "12_3.png".
type SourceName struct {
	ID   int
	Skin int
}

// ParseSourceName reads the id and skin from a part image's file name.
func ParseSourceName(name string) (SourceName, bool) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	idPart, skinPart, hasSkin := strings.Cut(base, "_")
	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return SourceName{}, false
	}
	skin := 0
	if hasSkin {
		skin, err = strconv.Atoi(skinPart)
		if err != nil || skin < 0 {
			return SourceName{}, false
		}
	}
	return SourceName{ID: id, Skin: skin}, true
}

// SheetColumns picks the column count for a sheet holding ids 1..maxID: the
// smallest square that fits.
func SheetColumns(maxID int) int {
	if maxID <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(maxID))))
}

// Pack lays tiles out on a sheet so that AddSheet with the same tile size
// reads them back under the same ids. Each tile is scaled to tileSize.
func Pack(tiles map[int]image.Image, tileSize, cols int) (*image.NRGBA, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("assets: pack: tile size %d", tileSize)
	}
	maxID := 0
	for id := range tiles {
		if id <= 0 {
			return nil, fmt.Errorf("assets: pack: invalid id %d", id)
		}
		maxID = max(maxID, id)
	}
	if cols <= 0 {
		cols = SheetColumns(maxID)
	}
	rows := max(1, (maxID+cols-1)/cols)
	sheet := image.NewNRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))

	ids := make([]int, 0, len(tiles))
	for id := range tiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		col, row := (id-1)%cols, (id-1)/cols
		dst := image.Rect(col*tileSize, row*tileSize, (col+1)*tileSize, (row+1)*tileSize)
		src := tiles[id]
		draw.CatmullRom.Scale(sheet, dst, src, src.Bounds(), draw.Src, nil)
	}
	return sheet, nil
}
