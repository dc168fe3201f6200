package partquery

import (
	"testing"

	"github.com/milk9111/contraptions/parts"
)

type names map[int]string

func (n names) Name(id int) string { return n[id] }

func TestMatch(t *testing.T) {
	p := parts.Part{X: 3, Y: -2, ObjectID: 12, Layer: 1, Rotation: 5, Mirror: true, Skin: 2}
	tests := []struct {
		expr string
		want bool
	}{
		{"id == 12", true},
		{"id == 13", false},
		{"layer == 1 && mirror", true},
		{"x > 0 && y < 0", true},
		{"rotation == 1", true},
		{"skin != 0", true},
		{`name == "wheel"`, true},
		{`import("math").abs(y) == 2.0`, true},
		{"id", true},
		{"0", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q, err := Compile(tt.expr, names{12: "wheel"})
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := q.Match(p)
			if err != nil {
				t.Fatalf("match: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{"", "   ", "id ==", "unknown_var == 1"} {
		if _, err := Compile(expr, nil); err == nil {
			t.Fatalf("expected error for %q", expr)
		}
	}
}

func TestFilterReusesQuery(t *testing.T) {
	q, err := Compile("layer == 0", nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ps := []parts.Part{
		{X: 0, ObjectID: 6, Layer: 0},
		{X: 1, ObjectID: 12, Layer: 1},
		{X: 2, ObjectID: 7, Layer: 0},
	}
	got, err := q.Filter(ps)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ObjectID != 6 || got[1].ObjectID != 7 {
		t.Fatalf("unexpected result %+v", got)
	}
	if q.String() != "layer == 0" {
		t.Fatalf("unexpected String %q", q.String())
	}
}
