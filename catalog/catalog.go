package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the part id table: which ids are the paired frame halves,
// which can be mirrored, which have diagonal rotation states, and the
// display names used in status text.
type Catalog struct {
	FrameIDs      []int          `yaml:"frame_ids"`
	MirrorableIDs []int          `yaml:"mirrorable_ids"`
	DiagonalIDs   []int          `yaml:"diagonal_ids"`
	Names         map[int]string `yaml:"names"`

	frames     map[int]bool
	mirrorable map[int]bool
	diagonal   map[int]bool
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("catalog: embedded catalog.yaml: " + err.Error())
	}
	return c
}

// Load reads a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return &c, nil
}

// New builds a catalog from explicit id tables.
func New(frameIDs, mirrorableIDs, diagonalIDs []int) (*Catalog, error) {
	c := &Catalog{
		FrameIDs:      append([]int(nil), frameIDs...),
		MirrorableIDs: append([]int(nil), mirrorableIDs...),
		DiagonalIDs:   append([]int(nil), diagonalIDs...),
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) init() error {
	switch len(c.FrameIDs) {
	case 0:
	case 2:
		if c.FrameIDs[0] == c.FrameIDs[1] {
			return fmt.Errorf("frame_ids must be two distinct ids, got %v", c.FrameIDs)
		}
	default:
		return fmt.Errorf("frame_ids must list exactly two companion ids, got %v", c.FrameIDs)
	}
	c.frames = toSet(c.FrameIDs)
	c.mirrorable = toSet(c.MirrorableIDs)
	c.diagonal = toSet(c.DiagonalIDs)
	for id := range c.frames {
		if id <= 0 {
			return fmt.Errorf("frame id %d is not positive", id)
		}
	}
	return nil
}

func toSet(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// LayerOf returns the z-layer an object id is stored in. Frame ids sit on
// layer 0 under everything else.
func (c *Catalog) LayerOf(id int) int {
	if c.frames[id] {
		return 0
	}
	return 1
}

// IsFrame reports whether id is one of the two paired frame halves.
func (c *Catalog) IsFrame(id int) bool {
	return c.frames[id]
}

// Companion returns the other half of a frame pair.
func (c *Catalog) Companion(id int) (int, bool) {
	if !c.frames[id] {
		return 0, false
	}
	if c.FrameIDs[0] == id {
		return c.FrameIDs[1], true
	}
	return c.FrameIDs[0], true
}

func (c *Catalog) IsMirrorable(id int) bool {
	return c.mirrorable[id]
}

func (c *Catalog) IsDiagonal(id int) bool {
	return c.diagonal[id]
}

// Name returns the display name for id, falling back to a generic label.
func (c *Catalog) Name(id int) string {
	if n, ok := c.Names[id]; ok && n != "" {
		return n
	}
	return fmt.Sprintf("part %d", id)
}

// NamedIDs returns the ids that have names, ascending.
func (c *Catalog) NamedIDs() []int {
	ids := make([]int, 0, len(c.Names))
	for id := range c.Names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
