package savefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/parts"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]int{6, 7}, []int{33}, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestFormatLineInvertsY(t *testing.T) {
	p := parts.Part{ObjectID: 6, Skin: 0, X: 3, Y: -2, Rotation: 1}
	if got := FormatLine(p); got != "6,0,3,2,1,0,0,0" {
		t.Fatalf("unexpected line %q", got)
	}
	p = parts.Part{ObjectID: 33, Skin: 2, X: -1, Y: 4, Rotation: 3, Mirror: true}
	if got := FormatLine(p); got != "33,2,-1,-4,3,1,0,0" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestParseLine(t *testing.T) {
	cat := testCatalog(t)
	cases := []struct {
		name    string
		line    string
		want    parts.Part
		wantErr bool
	}{
		{"frame", "6,0,3,2,1,0,0,0", parts.Part{ObjectID: 6, X: 3, Y: -2, Layer: 0, Rotation: 1}, false},
		{"plain_mirrored", "33,1,0,-5,2,1,0,0", parts.Part{ObjectID: 33, Skin: 1, X: 0, Y: 5, Layer: 1, Rotation: 2, Mirror: true}, false},
		{"six_fields", "12,0,1,1,0,0", parts.Part{ObjectID: 12, X: 1, Y: -1, Layer: 1}, false},
		{"rotation_wraps", "12,0,0,0,5,0,0,0", parts.Part{ObjectID: 12, Layer: 1, Rotation: 1}, false},
		{"spaces", " 12, 0, 2, 3, 0, 0, 0, 0 ", parts.Part{ObjectID: 12, X: 2, Y: -3, Layer: 1}, false},
		{"too_short", "12,0,1,1,0", parts.Part{}, true},
		{"not_int", "12,0,x,1,0,0,0,0", parts.Part{}, true},
		{"zero_id", "0,0,1,1,0,0,0,0", parts.Part{}, true},
		{"negative_skin", "12,-1,1,1,0,0,0,0", parts.Part{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseLine(c.line, cat)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestDecodeSkipsBadLines(t *testing.T) {
	in := strings.Join([]string{
		"6,0,3,2,1,0,0,0",
		"",
		"garbage",
		"7,0,3,2,0,0,0,0",
		"1,2,3",
		"33,0,0,0,0,1,0,0",
	}, "\n")
	res, err := Decode(strings.NewReader(in), testCatalog(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(res.Parts))
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("expected 2 skipped lines, got %d", len(res.Skipped))
	}
	if res.Skipped[0].Line != 3 || res.Skipped[1].Line != 5 {
		t.Fatalf("unexpected skipped line numbers %+v", res.Skipped)
	}
}

func TestDecodeSkipsOverlongLine(t *testing.T) {
	in := "6,0,1,1,0,0,0,0\n" + strings.Repeat("9", 70000) + "\r\n7,0,1,1,0,0,0,0"
	res, err := Decode(strings.NewReader(in), testCatalog(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(res.Parts))
	}
	if res.Parts[1].ObjectID != 7 || res.Parts[1].Y != -1 {
		t.Fatalf("unexpected last part %+v", res.Parts[1])
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Line != 2 {
		t.Fatalf("expected line 2 skipped, got %+v", res.Skipped)
	}
	if len(res.Skipped[0].Text) > 100 {
		t.Fatalf("skipped text should be truncated, got %d bytes", len(res.Skipped[0].Text))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cat := testCatalog(t)
	in := []parts.Part{
		{ObjectID: 6, X: 3, Y: -2, Layer: 0, Rotation: 1},
		{ObjectID: 7, X: 3, Y: -2, Layer: 0},
		{ObjectID: 33, Skin: 4, X: -8, Y: 11, Layer: 1, Rotation: 3, Mirror: true},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	res, err := Decode(&buf, cat)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Parts) != len(in) {
		t.Fatalf("expected %d parts, got %d", len(in), len(res.Parts))
	}
	for i := range in {
		if res.Parts[i] != in[i] {
			t.Fatalf("part %d: expected %+v, got %+v", i, in[i], res.Parts[i])
		}
	}
}

func TestSaveLoadImportFiles(t *testing.T) {
	cat := testCatalog(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "a."+Ext)

	src := parts.NewStore(cat)
	src.Place(1, 1, 12, 0)
	src.Place(0, 0, 6, 0)
	if err := SaveFile(path, src); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// layer 0 first, regardless of placement order
	if want := "6,0,0,0,0,0,0,0\n12,0,1,-1,0,0,0,0\n"; string(data) != want {
		t.Fatalf("unexpected file contents %q", data)
	}

	dst := parts.NewStore(cat)
	dst.Place(9, 9, 12, 0)
	if _, err := LoadFile(path, dst); err != nil {
		t.Fatalf("load: %v", err)
	}
	if dst.Len() != 2 || len(dst.Query(9, 9)) != 0 {
		t.Fatalf("load should replace contents, len=%d", dst.Len())
	}

	hs, _, err := ImportFile(path, dst)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(hs) != 2 || dst.Len() != 4 {
		t.Fatalf("import should append; handles=%d len=%d", len(hs), dst.Len())
	}
	for _, h := range hs {
		if !dst.Alive(h) {
			t.Fatalf("imported handle %v not alive", h)
		}
	}
}

func TestNoPathLeavesStoreAlone(t *testing.T) {
	store := parts.NewStore(testCatalog(t))
	store.Place(0, 0, 12, 0)
	if _, err := LoadFile("", store); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if _, _, err := ImportFile("", store); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if err := SaveFile("", store); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("store changed: len=%d", store.Len())
	}
}

func TestLoadMissingFileKeepsStore(t *testing.T) {
	store := parts.NewStore(testCatalog(t))
	store.Place(0, 0, 12, 0)
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.contraption"), store); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if store.Len() != 1 {
		t.Fatalf("failed load must not clear the store")
	}
}
