package savefile

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/contraptions/parts"
)

// ErrNoPath is returned when no file was chosen. Nothing is changed.
var ErrNoPath = errors.New("savefile: no path given")

// Ext is the extension the editor offers in its dialogs.
const Ext = "contraption"

func read(path string, rule LayerRule) (Result, error) {
	if path == "" {
		return Result{}, ErrNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("savefile: open %s: %w", path, err)
	}
	defer f.Close()
	res, err := Decode(f, rule)
	if err != nil {
		return Result{}, fmt.Errorf("savefile: read %s: %w", path, err)
	}
	for _, s := range res.Skipped {
		log.Printf("savefile: %s: skipped %s", path, s)
	}
	return res, nil
}

// LoadFile replaces the store's contents with the parts in path. The store
// is only cleared once the file has been read.
func LoadFile(path string, store *parts.Store) (Result, error) {
	res, err := read(path, store.Rules())
	if err != nil {
		return res, err
	}
	replace(store, res.Parts)
	return res, nil
}

// LoadFS is LoadFile for a file inside fsys, such as an embedded level.
func LoadFS(fsys fs.FS, name string, store *parts.Store) (Result, error) {
	if name == "" {
		return Result{}, ErrNoPath
	}
	f, err := fsys.Open(name)
	if err != nil {
		return Result{}, fmt.Errorf("savefile: open %s: %w", name, err)
	}
	defer f.Close()
	res, err := Decode(f, store.Rules())
	if err != nil {
		return Result{}, fmt.Errorf("savefile: read %s: %w", name, err)
	}
	replace(store, res.Parts)
	return res, nil
}

func replace(store *parts.Store, ps []parts.Part) {
	store.Clear()
	for _, p := range ps {
		store.Insert(p)
	}
}

// ImportFile appends the parts in path to the store and returns their
// handles in file order.
func ImportFile(path string, store *parts.Store) ([]parts.Handle, Result, error) {
	res, err := read(path, store.Rules())
	if err != nil {
		return nil, res, err
	}
	hs := make([]parts.Handle, 0, len(res.Parts))
	for _, p := range res.Parts {
		hs = append(hs, store.Insert(p))
	}
	return hs, res, nil
}

// SaveFile writes every part in layer-then-insertion order.
func SaveFile(path string, store *parts.Store) error {
	if path == "" {
		return ErrNoPath
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("savefile: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("savefile: create %s: %w", path, err)
	}
	if err := Encode(f, store.Parts()); err != nil {
		f.Close()
		return fmt.Errorf("savefile: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("savefile: close %s: %w", path, err)
	}
	return nil
}

// DefaultSaveDir returns the game's contraption folder when it exists on
// this machine, or "" otherwise.
func DefaultSaveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	// UserConfigDir is AppData/Roaming on Windows; the game writes to LocalLow.
	dir := filepath.Join(filepath.Dir(base), "LocalLow", "_Imaginary_", "Bad Piggies__Rebooted", "contraptionsB")
	if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
		return dir
	}
	return ""
}
