package atomfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorc/colorc/atom"
)

const program = `seeds:
  x: false
  y: unknown
define:
  a: {or: [x, y]}
  b: {implies: [a, y]}
  c: {and: [a, true]}
force:
  - {expr: b, value: true}
  - expr: {not: c}
    value: false
output:
  - {format: ["y is ", ""], exprs: [y]}
`

func TestDecode(t *testing.T) {
	r, err := Decode("p.yaml", []byte(program))
	if err != nil {
		t.Fatal(err)
	}
	want := `v0 "x" = seed(FALSE)
v1 "y" = seed(NULL)
v2 "a" = (or x y)
v3 "b" = (or (not a) y)
v4 "c" = (not (or (not a) (not true)))
force b => true
force (not c) => false
output ["y is " ""] y
`
	if diff := cmp.Diff(want, r.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, a := range r.Actions {
		if a.Span == nil || a.Span.File != "p.yaml" {
			t.Errorf("action %s has span %v", a.Kind, a.Span)
		}
	}
}

func TestDecodeIDsFollowFileOrder(t *testing.T) {
	r, err := Decode("p.yaml", []byte(program))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, id := range r.IDs() {
		got = append(got, r.Definitions[id].Name)
	}
	if diff := cmp.Diff([]string{"x", "y", "a", "b", "c"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if r.NextID() != atom.ID(5) {
		t.Errorf("next id %s", r.NextID())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "seeds: [\n"},
		{"unknown name", "force:\n  - {expr: z, value: true}\n"},
		{"forward reference", "define:\n  a: b\n  b: true\n"},
		{"self reference", "define:\n  a: {not: a}\n"},
		{"duplicate", "seeds:\n  x: true\ndefine:\n  x: true\n"},
		{"bad seed", "seeds:\n  x: maybe\n"},
		{"unknown operator", "define:\n  a: {xor: [true, false]}\n"},
		{"two keys", "define:\n  a: {not: true, or: [true]}\n"},
		{"implies arity", "define:\n  a: {implies: [true]}\n"},
		{"or scalar", "define:\n  a: {or: true}\n"},
		{"missing expr", "force:\n  - {value: true}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("p.yaml", []byte(tt.src))
			if !errors.Is(err, ErrDecode) {
				t.Errorf("got %v, want ErrDecode", err)
			}
		})
	}
}
