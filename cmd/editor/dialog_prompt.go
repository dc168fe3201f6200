//go:build !dialog
// +build !dialog

package main

import (
	"path/filepath"
)

// pickFile asks for a path in the in-window prompt. Relative paths are taken
// from the save folder.
func (g *Game) pickFile(mode pickMode, done func(path string)) {
	initial := g.lastPath
	if initial == "" && g.cfg.SaveDir != "" {
		initial = g.cfg.SaveDir + string(filepath.Separator)
	}
	g.prompt.Open(mode.title()+":", initial, func(path string) {
		if path != "" && !filepath.IsAbs(path) && g.cfg.SaveDir != "" {
			path = filepath.Join(g.cfg.SaveDir, path)
		}
		done(path)
	})
}
