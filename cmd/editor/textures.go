package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/contraptions/assets"
)

// textureCache uploads atlas tiles to the GPU on first use.
type textureCache struct {
	atlas  *assets.Atlas
	images map[assets.Key]*ebiten.Image
}

func newTextureCache(atlas *assets.Atlas) *textureCache {
	return &textureCache{atlas: atlas, images: make(map[assets.Key]*ebiten.Image)}
}

// Get returns the texture for id in skin, falling back to the default skin.
// It returns nil for ids the atlas doesn't have.
func (c *textureCache) Get(id, skin int) *ebiten.Image {
	if !c.atlas.Has(id, skin) {
		skin = 0
	}
	key := assets.Key{ID: id, Skin: skin}
	if img, ok := c.images[key]; ok {
		return img
	}
	src, ok := c.atlas.Tile(id, skin)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[key] = img
	return img
}

func (c *textureCache) TileSize() int {
	return c.atlas.TileSize()
}
