package editor

import (
	"io/fs"

	"github.com/milk9111/contraptions/parts"
	"github.com/milk9111/contraptions/savefile"
)

// LoadFile replaces every part with the contents of path. The selection,
// clipboard and undo history are reset.
func (e *Editor) LoadFile(path string) (savefile.Result, error) {
	res, err := savefile.LoadFile(path, e.Store)
	if err != nil {
		return res, err
	}
	e.reset()
	return res, nil
}

// LoadFS loads a contraption from fsys, such as one of the bundled levels.
func (e *Editor) LoadFS(fsys fs.FS, name string) (savefile.Result, error) {
	res, err := savefile.LoadFS(fsys, name, e.Store)
	if err != nil {
		return res, err
	}
	e.reset()
	if hs := e.Store.All(); len(hs) > 0 {
		e.Focus(hs)
	}
	return res, nil
}

func (e *Editor) reset() {
	e.mode = ModeIdle
	e.dragOrigin = e.dragOrigin[:0]
	e.dragSnap = parts.Snapshot{}
	e.Selection.Clear()
	e.history.Clear()
}

// ImportFile appends the parts in path, selects them and centers the view on
// them. The import can be undone.
func (e *Editor) ImportFile(path string) ([]parts.Handle, savefile.Result, error) {
	if path == "" {
		return nil, savefile.Result{}, savefile.ErrNoPath
	}
	snap := e.Store.Snapshot()
	hs, res, err := savefile.ImportFile(path, e.Store)
	if err != nil {
		return nil, res, err
	}
	if len(hs) > 0 {
		e.history.Push(snap)
		e.mode = ModeIdle
		e.Select(hs)
		e.Focus(hs)
	}
	return hs, res, nil
}

// SaveFile writes every part to path.
func (e *Editor) SaveFile(path string) error {
	return savefile.SaveFile(path, e.Store)
}
