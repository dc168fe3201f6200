package levels

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.contraption
var LevelsFS embed.FS

// Names lists the bundled contraptions without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".contraption" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".contraption"))
	}
	sort.Strings(names)
	return names
}

// File returns the embedded file name for a level, accepting it with or
// without the extension.
func File(name string) string {
	if path.Ext(name) == ".contraption" {
		return name
	}
	return name + ".contraption"
}
