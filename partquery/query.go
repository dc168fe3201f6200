// Package partquery filters parts with tengo expressions such as
// `id == 12 && layer == 1` or `x >= 0 && mirror`.
package partquery

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/contraptions/parts"
)

// Vars are the names an expression can read.
var Vars = []string{"id", "x", "y", "layer", "rotation", "mirror", "skin", "name"}

// Namer gives a display name for an object id.
type Namer interface {
	Name(id int) string
}

// Query is a compiled filter expression. It is not safe for concurrent use.
type Query struct {
	expr     string
	compiled *tengo.Compiled
	names    Namer
}

// Compile parses expr. names may be nil, in which case `name` is "".
func Compile(expr string, names Namer) (*Query, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("partquery: empty expression")
	}
	script := tengo.NewScript([]byte("__match := (" + expr + ")"))
	for _, v := range Vars {
		var zero any
		switch v {
		case "mirror":
			zero = false
		case "name":
			zero = ""
		default:
			zero = 0
		}
		if err := script.Add(v, zero); err != nil {
			return nil, fmt.Errorf("partquery: %w", err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("partquery: compile %q: %w", expr, err)
	}
	return &Query{expr: expr, compiled: compiled, names: names}, nil
}

func (q *Query) String() string {
	return q.expr
}

// Match runs the expression against p. The result is tengo's truthiness of
// the expression's value.
func (q *Query) Match(p parts.Part) (bool, error) {
	name := ""
	if q.names != nil {
		name = q.names.Name(p.ObjectID)
	}
	vals := map[string]any{
		"id":       p.ObjectID,
		"x":        p.X,
		"y":        p.Y,
		"layer":    p.Layer,
		"rotation": parts.NormalizeRotation(p.Rotation),
		"mirror":   p.Mirror,
		"skin":     p.Skin,
		"name":     name,
	}
	for k, v := range vals {
		if err := q.compiled.Set(k, v); err != nil {
			return false, fmt.Errorf("partquery: set %s: %w", k, err)
		}
	}
	if err := q.compiled.Run(); err != nil {
		return false, fmt.Errorf("partquery: run %q: %w", q.expr, err)
	}
	return q.compiled.Get("__match").Bool(), nil
}

// Filter returns the parts q matches, stopping at the first runtime error.
func (q *Query) Filter(ps []parts.Part) ([]parts.Part, error) {
	var out []parts.Part
	for _, p := range ps {
		ok, err := q.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
