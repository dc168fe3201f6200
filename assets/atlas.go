package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// Key addresses one tile: an object id drawn with one of its skins.
type Key struct {
	ID   int
	Skin int
}

// Atlas holds part textures sliced from sheets of square tiles. Tile ids
// count from 1, left to right then top to bottom.
type Atlas struct {
	tileSize int
	tiles    map[Key]*image.NRGBA
}

func NewAtlas(tileSize int) *Atlas {
	return &Atlas{tileSize: tileSize, tiles: make(map[Key]*image.NRGBA)}
}

func (a *Atlas) TileSize() int {
	return a.tileSize
}

// Decode reads a png, jpeg or webp image, or a tga when ext is ".tga".
func Decode(r io.Reader, ext string) (image.Image, error) {
	img, err := decode(r, ext)
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	return img, nil
}

// tga has no magic number, so it is chosen by extension rather than
// registered with image.Decode, where it would claim every format.
func decode(r io.Reader, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		return tga.Decode(r)
	}
	img, _, err := image.Decode(r)
	return img, err
}

// DecodeFile reads an image from disk.
func DecodeFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, err := decode(bytes.NewReader(b), filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// AddSheet slices sheet into tiles for skin and returns how many non-empty
// tiles it added. Fully transparent tiles are left out.
func (a *Atlas) AddSheet(sheet image.Image, skin int) int {
	if a.tileSize <= 0 || sheet == nil {
		return 0
	}
	b := sheet.Bounds()
	cols := b.Dx() / a.tileSize
	rows := b.Dy() / a.tileSize
	added := 0
	id := 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(col*a.tileSize, row*a.tileSize, (col+1)*a.tileSize, (row+1)*a.tileSize).Add(b.Min)
			tile := image.NewNRGBA(image.Rect(0, 0, a.tileSize, a.tileSize))
			draw.Draw(tile, tile.Bounds(), sheet, r.Min, draw.Src)
			if !transparent(tile) {
				a.tiles[Key{ID: id, Skin: skin}] = tile
				added++
			}
			id++
		}
	}
	return added
}

// Set stores a single tile.
func (a *Atlas) Set(id, skin int, img image.Image) {
	b := img.Bounds()
	tile := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(tile, tile.Bounds(), img, b.Min, draw.Src)
	a.tiles[Key{ID: id, Skin: skin}] = tile
}

func transparent(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// LoadSheet decodes a sheet from disk and adds it as skin.
func (a *Atlas) LoadSheet(path string, skin int) (int, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return 0, err
	}
	return a.AddSheet(img, skin), nil
}

// LoadSkins loads path as skin 0 and every sibling named base_N.ext as
// skin N.
func LoadSkins(path string, tileSize int) (*Atlas, error) {
	a := NewAtlas(tileSize)
	if _, err := a.LoadSheet(path, 0); err != nil {
		return nil, err
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), base+"_*"+ext))
	if err != nil {
		return a, nil
	}
	for _, m := range matches {
		suffix := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(m), base+"_"), ext)
		skin, err := strconv.Atoi(suffix)
		if err != nil || skin <= 0 {
			continue
		}
		if _, err := a.LoadSheet(m, skin); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Has reports whether a texture exists for (id, skin).
func (a *Atlas) Has(id, skin int) bool {
	_, ok := a.tiles[Key{ID: id, Skin: skin}]
	return ok
}

// Tile returns the texture for (id, skin), falling back to skin 0.
func (a *Atlas) Tile(id, skin int) (image.Image, bool) {
	if t, ok := a.tiles[Key{ID: id, Skin: skin}]; ok {
		return t, true
	}
	if t, ok := a.tiles[Key{ID: id}]; ok {
		return t, true
	}
	return nil, false
}

// IDs returns every object id with at least one texture, ascending.
func (a *Atlas) IDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for k := range a.tiles {
		if !seen[k.ID] {
			seen[k.ID] = true
			ids = append(ids, k.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// Skins returns the skins available for id, ascending.
func (a *Atlas) Skins(id int) []int {
	var skins []int
	for k := range a.tiles {
		if k.ID == id {
			skins = append(skins, k.Skin)
		}
	}
	sort.Ints(skins)
	return skins
}

// Keys returns every tile key ordered by id then skin.
func (a *Atlas) Keys() []Key {
	keys := make([]Key, 0, len(a.tiles))
	for k := range a.tiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ID != keys[j].ID {
			return keys[i].ID < keys[j].ID
		}
		return keys[i].Skin < keys[j].Skin
	})
	return keys
}

func (a *Atlas) Len() int {
	return len(a.tiles)
}
