package main

import (
	"golang.design/x/clipboard"
)

// systemClipboard exposes the OS text clipboard to the editor.
type systemClipboard struct{}

// newSystemClipboard returns nil when the platform clipboard can't be used,
// in which case copy and paste stay inside the editor.
func newSystemClipboard() (*systemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return &systemClipboard{}, nil
}

func (systemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

func (systemClipboard) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}
