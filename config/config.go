package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/contraptions/grid"
	"gopkg.in/yaml.v3"
)

// Config holds the editor's view, atlas and history settings.
type Config struct {
	// View
	CellSize  int     `yaml:"cell_size"`
	MoveSpeed int     `yaml:"move_speed"`
	ZoomSpeed float64 `yaml:"zoom_speed"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	ScreenW   int     `yaml:"screen_w"`
	ScreenH   int     `yaml:"screen_h"`

	// Assets
	Atlas    string `yaml:"atlas"`
	TileSize int    `yaml:"tile_size"`
	Catalog  string `yaml:"catalog"`
	SaveDir  string `yaml:"save_dir"`

	// Editing
	MaxUndo     int `yaml:"max_undo"`
	QueueSize   int `yaml:"queue_size"`
	HotbarRows  int `yaml:"hotbar_rows"`
	HotbarThumb int `yaml:"hotbar_thumb"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Atlas    string
	Catalog  string
	SaveDir  string
	TileSize int
	ScreenW  int
	ScreenH  int
}

// Default returns a config with every field at its default.
func Default() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

// Load reads a YAML config file. Fields not set in the file keep their zero
// values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	// relative asset paths are taken from the config file's directory
	dir := filepath.Dir(path)
	cfg.Atlas = relTo(dir, cfg.Atlas)
	cfg.Catalog = relTo(dir, cfg.Catalog)
	return cfg, nil
}

func relTo(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Resolve applies flag overrides and fills any unset field with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.Atlas != "" {
		c.Atlas = flags.Atlas
	}
	if flags.Catalog != "" {
		c.Catalog = flags.Catalog
	}
	if flags.SaveDir != "" {
		c.SaveDir = flags.SaveDir
	}
	if flags.TileSize > 0 {
		c.TileSize = flags.TileSize
	}
	if flags.ScreenW > 0 {
		c.ScreenW = flags.ScreenW
	}
	if flags.ScreenH > 0 {
		c.ScreenH = flags.ScreenH
	}

	if c.CellSize <= 0 {
		c.CellSize = grid.DefaultCellSize
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = grid.DefaultMoveSpeed
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = grid.DefaultZoomSpeed
	}
	if c.MinZoom <= 0 {
		c.MinZoom = grid.DefaultMinZoom
	}
	if c.MaxZoom <= 0 {
		c.MaxZoom = grid.DefaultMaxZoom
	}
	if c.MaxZoom < c.MinZoom {
		c.MinZoom, c.MaxZoom = c.MaxZoom, c.MinZoom
	}
	if c.ScreenW <= 0 {
		c.ScreenW = 1600
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 900
	}
	if c.Atlas == "" {
		c.Atlas = filepath.Join("textures", "parts.png")
	}
	if c.TileSize <= 0 {
		c.TileSize = 108
	}
	if c.MaxUndo <= 0 {
		c.MaxUndo = 100
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.HotbarRows <= 0 {
		c.HotbarRows = 2
	}
	if c.HotbarThumb <= 0 {
		c.HotbarThumb = 40
	}
}

// NewView builds a grid view from the view settings.
func (c Config) NewView() *grid.View {
	v := grid.NewView()
	v.CellSize = c.CellSize
	v.MoveSpeed = c.MoveSpeed
	v.ZoomSpeed = c.ZoomSpeed
	v.MinZoom = c.MinZoom
	v.MaxZoom = c.MaxZoom
	v.SetZoom(1.0)
	return v
}
