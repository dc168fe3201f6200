package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if !c.IsFrame(6) || !c.IsFrame(7) {
		t.Fatalf("expected 6 and 7 to be frame ids, got %v", c.FrameIDs)
	}
	if c.LayerOf(6) != 0 || c.LayerOf(7) != 0 {
		t.Fatalf("frame ids should be on layer 0")
	}
	if c.LayerOf(1) != 1 {
		t.Fatalf("plain ids should be on layer 1")
	}
	if other, ok := c.Companion(6); !ok || other != 7 {
		t.Fatalf("expected companion 7 for 6, got %d ok=%v", other, ok)
	}
	if _, ok := c.Companion(1); ok {
		t.Fatalf("plain id should have no companion")
	}
	for _, id := range []int{33, 34, 35, 36} {
		if !c.IsMirrorable(id) {
			t.Fatalf("expected %d to be mirrorable", id)
		}
	}
	if c.IsMirrorable(1) {
		t.Fatalf("id 1 should not be mirrorable")
	}
}

func TestParseRejectsBadFramePairs(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"one_id", "frame_ids: [5]\n"},
		{"three_ids", "frame_ids: [5, 6, 7]\n"},
		{"duplicate", "frame_ids: [5, 5]\n"},
		{"non_positive", "frame_ids: [0, 5]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); err == nil {
				t.Fatalf("expected error for %q", c.yaml)
			}
		})
	}
}

func TestParseCustomTables(t *testing.T) {
	c, err := Parse([]byte("frame_ids: [5, 6]\ndiagonal_ids: [40]\nnames:\n  5: Wood Frame\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.LayerOf(5) != 0 || c.LayerOf(7) != 1 {
		t.Fatalf("unexpected layers: 5->%d 7->%d", c.LayerOf(5), c.LayerOf(7))
	}
	if !c.IsDiagonal(40) || c.IsDiagonal(5) {
		t.Fatalf("diagonal table not applied")
	}
	if got := c.Name(5); got != "Wood Frame" {
		t.Fatalf("expected name Wood Frame, got %q", got)
	}
	if got := c.Name(99); got != "part 99" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("frame_ids: [1, 2]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.IsFrame(1) || !c.IsFrame(2) {
		t.Fatalf("expected frames 1 and 2, got %v", c.FrameIDs)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatcherReportsSettledWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("frame_ids: [6, 7]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	// a half-written file followed quickly by the finished one
	if err := os.WriteFile(path, []byte("frame_ids: [1,"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(path, []byte("frame_ids: [1, 2]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	var got *Catalog
	for got == nil {
		if time.Now().After(deadline) {
			t.Fatalf("no reload reported")
		}
		c, changed, err := w.Poll()
		if err != nil {
			t.Fatalf("poll: %v", err)
		}
		if changed {
			got = c
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !got.IsFrame(1) || !got.IsFrame(2) {
		t.Fatalf("expected the finished file, got frames %v", got.FrameIDs)
	}

	time.Sleep(3 * reloadDelay)
	if _, changed, err := w.Poll(); changed || err != nil {
		t.Fatalf("expected one reload for the burst, got changed=%v err=%v", changed, err)
	}
}
