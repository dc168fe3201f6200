package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSheetPath(t *testing.T) {
	tests := []struct {
		out  string
		skin int
		want string
	}{
		{"textures/parts.png", 0, "textures/parts.png"},
		{"textures/parts.png", 2, "textures/parts_2.png"},
		{"parts.webp", 1, "parts_1.webp"},
	}
	for _, tt := range tests {
		if got := sheetPath(tt.out, tt.skin); got != tt.want {
			t.Fatalf("sheetPath(%q, %d): expected %q, got %q", tt.out, tt.skin, tt.want, got)
		}
	}
}

func TestCollectGroupsBySkin(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for _, name := range []string{"1.png", "2.png", "2_1.png", "notes.txt", "wheel.png"} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	skins, err := collect(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(skins[0]) != 2 || len(skins[1]) != 1 {
		t.Fatalf("expected 2 default and 1 skin-1 images, got %d and %d", len(skins[0]), len(skins[1]))
	}
	if _, ok := skins[1][2]; !ok {
		t.Fatalf("expected id 2 in skin 1")
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := encode(&buf, "sheet.bmp", image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatalf("expected error for .bmp")
	}
	if err := encode(&buf, "sheet.webp", image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("webp: %v", err)
	}
}

func TestCollectNumbersUnnamedFilesByName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"wheel.png", "box.png", "engine.jpg"} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	skins, err := collect(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(skins[0]) != 3 {
		t.Fatalf("expected 3 images, got %d", len(skins[0]))
	}
	for id := 1; id <= 3; id++ {
		if _, ok := skins[0][id]; !ok {
			t.Fatalf("missing id %d", id)
		}
	}
}
