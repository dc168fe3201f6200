package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.CellSize != 50 || c.MoveSpeed != 5 || c.ZoomSpeed != 0.02 {
		t.Fatalf("unexpected view defaults %+v", c)
	}
	if c.MinZoom != 0.1 || c.MaxZoom != 5.0 {
		t.Fatalf("unexpected zoom limits %v..%v", c.MinZoom, c.MaxZoom)
	}
	if c.ScreenW != 1600 || c.ScreenH != 900 || c.TileSize != 108 || c.MaxUndo != 100 || c.QueueSize != 256 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	data := []byte("cell_size: 32\nzoom_speed: 0.05\natlas: sheets/parts.png\nmax_undo: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Atlas != filepath.Join(dir, "sheets", "parts.png") {
		t.Fatalf("atlas should be relative to the config file, got %s", c.Atlas)
	}
	c.Resolve(Flags{TileSize: 64, Catalog: "cat.yaml"})
	if c.CellSize != 32 || c.ZoomSpeed != 0.05 || c.MaxUndo != 10 {
		t.Fatalf("file values lost: %+v", c)
	}
	if c.TileSize != 64 || c.Catalog != "cat.yaml" {
		t.Fatalf("flags should override: %+v", c)
	}
	if c.MoveSpeed != 5 {
		t.Fatalf("unset fields should default, got move_speed %d", c.MoveSpeed)
	}

	v := c.NewView()
	if v.CellSize != 32 || v.EffectiveCellSize() != 32 || v.ZoomSpeed != 0.05 {
		t.Fatalf("view not configured: %+v", v)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("cell_size: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
