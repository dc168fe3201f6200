//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/sqweek/dialog"

	"github.com/milk9111/contraptions/savefile"
)

// pickFile opens the native file dialog and hands the chosen path to done.
// A cancelled dialog calls done with "".
func (g *Game) pickFile(mode pickMode, done func(path string)) {
	b := dialog.File().
		Filter("Contraption files", savefile.Ext, "txt").
		Filter("All files", "*").
		SetStartDir(g.cfg.SaveDir).
		Title(mode.title())
	var (
		path string
		err  error
	)
	if mode == pickSave {
		path, err = b.Save()
	} else {
		path, err = b.Load()
	}
	if err != nil && !errors.Is(err, dialog.ErrCancelled) {
		g.notify("file dialog: %v", err)
	}
	done(path)
}
