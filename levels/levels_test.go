package levels

import (
	"testing"

	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/parts"
	"github.com/milk9111/contraptions/savefile"
)

func TestBundledLevelsDecode(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("expected bundled levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			store := parts.NewStore(catalog.Default())
			res, err := savefile.LoadFS(LevelsFS, File(name), store)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(res.Skipped) != 0 {
				t.Fatalf("unexpected skipped lines %v", res.Skipped)
			}
			if store.Len() == 0 || store.Len() != len(res.Parts) {
				t.Fatalf("expected %d parts in store, got %d", len(res.Parts), store.Len())
			}
		})
	}
}

func TestFile(t *testing.T) {
	if File("cart") != "cart.contraption" || File("cart.contraption") != "cart.contraption" {
		t.Fatalf("unexpected file names")
	}
}
