package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/milk9111/contraptions/catalog"
	"github.com/milk9111/contraptions/parts"
	"github.com/milk9111/contraptions/savefile"
)

type idCount struct {
	ID    int
	Name  string
	Count int
}

// summary is what partinfo reports about one contraption file.
type summary struct {
	Path     string
	Parts    int
	Layers   [parts.LayerCount]int
	IDs      []idCount
	Bounds   [4]int // minX, minY, maxX, maxY
	Mirrored int
	Skinned  int
	Overlaps int
	Skipped  []savefile.SkippedLine
}

func summarize(path string, res savefile.Result, cat *catalog.Catalog) summary {
	s := summary{Path: path, Parts: len(res.Parts), Skipped: res.Skipped}
	counts := make(map[int]int)
	type cell struct{ x, y, layer, frame int }
	seen := make(map[cell]int)
	for i, p := range res.Parts {
		counts[p.ObjectID]++
		if p.Layer >= 0 && p.Layer < parts.LayerCount {
			s.Layers[p.Layer]++
		}
		if p.Mirror {
			s.Mirrored++
		}
		if p.Skin != 0 {
			s.Skinned++
		}
		// the two frame halves may share a cell, one of each
		c := cell{x: p.X, y: p.Y, layer: p.Layer}
		if cat.IsFrame(p.ObjectID) {
			c.frame = p.ObjectID
		}
		seen[c]++
		if seen[c] > 1 {
			s.Overlaps++
		}
		if i == 0 {
			s.Bounds = [4]int{p.X, p.Y, p.X, p.Y}
			continue
		}
		s.Bounds[0] = min(s.Bounds[0], p.X)
		s.Bounds[1] = min(s.Bounds[1], p.Y)
		s.Bounds[2] = max(s.Bounds[2], p.X)
		s.Bounds[3] = max(s.Bounds[3], p.Y)
	}
	for id, n := range counts {
		s.IDs = append(s.IDs, idCount{ID: id, Name: cat.Name(id), Count: n})
	}
	sort.Slice(s.IDs, func(i, j int) bool {
		if s.IDs[i].Count != s.IDs[j].Count {
			return s.IDs[i].Count > s.IDs[j].Count
		}
		return s.IDs[i].ID < s.IDs[j].ID
	})
	return s
}

// Size is the bounding box in cells.
func (s summary) Size() (w, h int) {
	if s.Parts == 0 {
		return 0, 0
	}
	return s.Bounds[2] - s.Bounds[0] + 1, s.Bounds[3] - s.Bounds[1] + 1
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8888AA")).Width(10)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6666"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#000768")).
			Padding(0, 1)
)

func row(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), value)
}

// render formats s for the terminal. top limits the id table; 0 shows all.
func render(s summary, top int) string {
	w, h := s.Size()
	lines := []string{
		titleStyle.Render(s.Path),
		row("parts", fmt.Sprint(s.Parts)),
		row("layers", fmt.Sprintf("frame %d, parts %d", s.Layers[0], s.Layers[1])),
		row("size", fmt.Sprintf("%dx%d cells", w, h)),
	}
	if s.Parts > 0 {
		lines = append(lines, row("bounds", fmt.Sprintf("(%d,%d)-(%d,%d)", s.Bounds[0], s.Bounds[1], s.Bounds[2], s.Bounds[3])))
	}
	lines = append(lines, row("mirrored", fmt.Sprint(s.Mirrored)), row("skinned", fmt.Sprint(s.Skinned)))
	if s.Overlaps > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("%d parts overlap another part on their layer", s.Overlaps)))
	}

	ids := s.IDs
	if top > 0 && len(ids) > top {
		ids = ids[:top]
	}
	if len(ids) > 0 {
		lines = append(lines, "", titleStyle.Render("parts by id"))
		for _, c := range ids {
			lines = append(lines, row(fmt.Sprintf("%5d", c.ID), fmt.Sprintf("%4d  %s", c.Count, c.Name)))
		}
		if len(ids) < len(s.IDs) {
			lines = append(lines, fmt.Sprintf("… %d more ids", len(s.IDs)-len(ids)))
		}
	}

	if len(s.Skipped) > 0 {
		lines = append(lines, "", warnStyle.Render(fmt.Sprintf("%d lines skipped", len(s.Skipped))))
		for _, sk := range s.Skipped {
			lines = append(lines, warnStyle.Render("  "+sk.String()))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
