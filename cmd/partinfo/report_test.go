package main

import (
	"strings"
	"testing"

	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/parts"
	"github.com/milk9111/contraptions/savefile"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]int{6, 7}, []int{33}, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func TestSummarize(t *testing.T) {
	cat := testCatalog(t)
	res, err := savefile.Decode(strings.NewReader(strings.Join([]string{
		"6,0,0,0,0,0,0,0",
		"7,0,0,0,0,0,0,0",
		"12,1,2,-3,1,0,0,0",
		"33,0,-1,0,0,1,0,0",
		"12,0,2,-3,0,0,0,0",
		"bogus",
	}, "\n")), cat)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := summarize("test", res, cat)

	if s.Parts != 5 {
		t.Fatalf("expected 5 parts, got %d", s.Parts)
	}
	if s.Layers != [parts.LayerCount]int{2, 3} {
		t.Fatalf("expected layers [2 3], got %v", s.Layers)
	}
	if s.Bounds != [4]int{-1, 0, 2, 3} {
		t.Fatalf("unexpected bounds %v", s.Bounds)
	}
	if w, h := s.Size(); w != 4 || h != 4 {
		t.Fatalf("expected 4x4, got %dx%d", w, h)
	}
	if s.Mirrored != 1 || s.Skinned != 1 {
		t.Fatalf("expected 1 mirrored and 1 skinned, got %d and %d", s.Mirrored, s.Skinned)
	}
	// frame halves share a cell legally; the two 12s at (2,3) do not
	if s.Overlaps != 1 {
		t.Fatalf("expected 1 overlap, got %d", s.Overlaps)
	}
	if len(s.IDs) == 0 || s.IDs[0].ID != 12 || s.IDs[0].Count != 2 {
		t.Fatalf("expected id 12 first with count 2, got %+v", s.IDs)
	}
	if len(s.Skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %d", len(s.Skipped))
	}
}

func TestRenderMentionsEverything(t *testing.T) {
	cat := testCatalog(t)
	res := savefile.Result{
		Parts:   []parts.Part{{X: 0, Y: 0, ObjectID: 12, Layer: 1}, {X: 1, Y: 0, ObjectID: 13, Layer: 1}},
		Skipped: []savefile.SkippedLine{{Line: 3, Text: "x", Reason: "too few fields"}},
	}
	out := render(summarize("cart.contraption", res, cat), 1)
	for _, want := range []string{"cart.contraption", "part 12", "1 more ids", "1 lines skipped", "too few fields"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEmptySummary(t *testing.T) {
	s := summarize("empty", savefile.Result{}, testCatalog(t))
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Fatalf("expected 0x0, got %dx%d", w, h)
	}
	if out := render(s, 0); !strings.Contains(out, "empty") {
		t.Fatalf("expected path in output:\n%s", out)
	}
}

func TestThumbnailSize(t *testing.T) {
	ps := []parts.Part{
		{X: 0, Y: 0, ObjectID: 6, Layer: 0},
		{X: 2, Y: 1, ObjectID: 12, Layer: 1, Rotation: 1, Mirror: true},
	}
	dc, err := thumbnail(ps, nil, 10)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	if w, h := dc.Width(), dc.Height(); w != 50 || h != 40 {
		t.Fatalf("expected 50x40, got %dx%d", w, h)
	}
	if _, err := thumbnail(nil, nil, 10); err == nil {
		t.Fatalf("expected error for no parts")
	}
}

func TestThumbPath(t *testing.T) {
	if got := thumbPath("out", "level:cart"); got != "out/cart.png" {
		t.Fatalf("unexpected %q", got)
	}
	if got := thumbPath("out", "/saves/bike.contraption"); got != "out/bike.png" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestReadBundledLevel(t *testing.T) {
	res, err := readContraption("level:cart", catalog.Default())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.Parts) == 0 {
		t.Fatalf("expected parts in bundled cart")
	}
}
