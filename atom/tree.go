package atom

import (
	"fmt"
	"sync/atomic"

	"github.com/colorc/colorc/label"
)

type ID int

func (id ID) String() string {
	return fmt.Sprintf("v%d", int(id))
}

type Kind int

const (
	SeedKind Kind = iota
	MarkerKind
	VariableKind
	ConstKind
	NotKind
	OrKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		SeedKind:     "Seed",
		MarkerKind:   "Marker",
		VariableKind: "Variable",
		ConstKind:    "Const",
		NotKind:      "Not",
		OrKind:       "Or",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

type Tree struct {
	Kind  Kind
	Label label.Label
	ID    ID
	Value bool
	Args  []*Tree

	seed   uint64
	hash   uint64
	hashed bool
}

var seedSerial atomic.Uint64

// Seed returns a new input bound to l. Use label.Null for an unknown input.
func Seed(l label.Label) *Tree {
	return &Tree{Kind: SeedKind, Label: l, seed: seedSerial.Add(1)}
}

func Marker(t *Tree) *Tree {
	return &Tree{Kind: MarkerKind, Args: []*Tree{t}}
}

func Var(id ID) *Tree {
	return &Tree{Kind: VariableKind, ID: id}
}

func Const(v bool) *Tree {
	return &Tree{Kind: ConstKind, Value: v}
}

func True() *Tree {
	return Const(true)
}

func False() *Tree {
	return Const(false)
}

func Not(t *Tree) *Tree {
	return &Tree{Kind: NotKind, Args: []*Tree{t}}
}

func Or(ts ...*Tree) *Tree {
	return &Tree{Kind: OrKind, Args: ts}
}

// And is sugar for Not(Or(Not(t)...)); the IR has no conjunction.
func And(ts ...*Tree) *Tree {
	nots := make([]*Tree, len(ts))
	for i, t := range ts {
		nots[i] = Not(t)
	}
	return Not(Or(nots...))
}

// Arg returns the operand of a Not or Marker.
func (t *Tree) Arg() *Tree {
	if len(t.Args) != 1 || (t.Kind != NotKind && t.Kind != MarkerKind) {
		panic(fmt.Sprintf("atom: Arg called on %s", t.Kind))
	}
	return t.Args[0]
}

// WithArgs returns a tree of the same kind as t over args.
func (t *Tree) WithArgs(args []*Tree) *Tree {
	switch t.Kind {
	case NotKind:
		return Not(args[0])
	case MarkerKind:
		return Marker(args[0])
	case OrKind:
		return Or(args...)
	}
	panic(fmt.Sprintf("atom: WithArgs called on %s", t.Kind))
}

func (t *Tree) IsConst(v bool) bool {
	return t.Kind == ConstKind && t.Value == v
}

// Size returns the number of nodes in t.
func (t *Tree) Size() int {
	n := 1
	for _, a := range t.Args {
		n += a.Size()
	}
	return n
}

// Visit calls f on t and its descendants in pre-order. Returning false from
// f skips the children of that node.
func (t *Tree) Visit(f func(*Tree) bool) {
	if !f(t) {
		return
	}
	for _, a := range t.Args {
		a.Visit(f)
	}
}
