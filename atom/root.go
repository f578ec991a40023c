package atom

import (
	"maps"
	"slices"

	"github.com/colorc/colorc/diag"
)

type Definition struct {
	ID   ID
	Tree *Tree
	// Name is the source name, if any, for printing.
	Name string
}

type ActionKind int

const (
	Restriction ActionKind = iota
	Output
)

func (k ActionKind) String() string {
	switch k {
	case Restriction:
		return "Restriction"
	case Output:
		return "Output"
	}
	return "<unknown action>"
}

// Action is a top level value action. A Restriction asserts that Tree
// evaluates to Value. An Output interleaves Format fragments with the values
// of Exprs and is only consumed outside the graph encoder.
type Action struct {
	Kind   ActionKind
	Tree   *Tree
	Value  bool
	Format []string
	Exprs  []*Tree
	Span   *diag.Span
}

type Root struct {
	Definitions map[ID]*Definition
	Actions     []Action

	// Unsatisfiable is set once a restriction has been found to contradict
	// itself trivially, after which the action itself is dropped.
	Unsatisfiable bool

	next ID
}

func NewRoot() *Root {
	return &Root{Definitions: map[ID]*Definition{}}
}

// Define binds t to a fresh ID.
func (r *Root) Define(t *Tree) ID {
	return r.DefineNamed("", t)
}

func (r *Root) DefineNamed(name string, t *Tree) ID {
	if r.Definitions == nil {
		r.Definitions = map[ID]*Definition{}
	}
	id := r.next
	r.next++
	r.Definitions[id] = &Definition{ID: id, Tree: t, Name: name}
	return id
}

// NextID is the ID the next call to Define will return.
func (r *Root) NextID() ID {
	return r.next
}

func (r *Root) Restrict(t *Tree, v bool) {
	r.Actions = append(r.Actions, Action{Kind: Restriction, Tree: t, Value: v})
}

func (r *Root) Output(format []string, exprs ...*Tree) {
	r.Actions = append(r.Actions, Action{Kind: Output, Format: format, Exprs: exprs})
}

// IDs returns the defined IDs in ascending order.
func (r *Root) IDs() []ID {
	return slices.Sorted(maps.Keys(r.Definitions))
}

// Lookup returns the definition of id. It panics with ErrDanglingVariable if
// there is none.
func (r *Root) Lookup(id ID) *Definition {
	def, ok := r.Definitions[id]
	if !ok {
		Violate(ErrDanglingVariable, "no definition for %s", id)
	}
	return def
}

// Map replaces every tree in the program, definitions first in ID order,
// then action trees in order.
func (r *Root) Map(f func(*Tree) *Tree) {
	for _, id := range r.IDs() {
		def := r.Definitions[id]
		def.Tree = f(def.Tree)
	}
	for i := range r.Actions {
		a := &r.Actions[i]
		if a.Tree != nil {
			a.Tree = f(a.Tree)
		}
		for j := range a.Exprs {
			a.Exprs[j] = f(a.Exprs[j])
		}
	}
}

// Walk calls f on every tree of the program in the order of Map.
func (r *Root) Walk(f func(*Tree)) {
	r.Map(func(t *Tree) *Tree {
		f(t)
		return t
	})
}

// Clone copies the definition table and action list. Trees are immutable
// and are shared.
func (r *Root) Clone() *Root {
	res := &Root{
		Definitions:   make(map[ID]*Definition, len(r.Definitions)),
		Actions:       make([]Action, len(r.Actions)),
		Unsatisfiable: r.Unsatisfiable,
		next:          r.next,
	}
	for id, def := range r.Definitions {
		d := *def
		res.Definitions[id] = &d
	}
	for i, a := range r.Actions {
		a.Format = slices.Clone(a.Format)
		a.Exprs = slices.Clone(a.Exprs)
		res.Actions[i] = a
	}
	return res
}
