package graph

import (
	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
	"github.com/colorc/colorc/diag"
	"github.com/colorc/colorc/label"
)

// Encode lowers r, which must have been passed through rewrite.Finalize, to
// a graph. Unsatisfiable restrictions are reported to sink and the graph is
// still built; it is then not 3-colorable.
//
// Encode panics with an atom.InvariantError if r contains a constant, a
// marker, a non-binary disjunction, an output action or a self referential
// variable.
func Encode(r *atom.Root, sink *diag.Sink) *Graph {
	e := &encoder{
		root:   r,
		sink:   sink,
		g:      &Graph{},
		vars:   map[atom.ID]int{},
		seeds:  atom.NewTable[int](),
		active: map[atom.ID]bool{},
	}
	e.g.True = e.basis(label.True)
	e.g.False = e.basis(label.False)
	e.g.Neutral = e.basis(label.Neutral)

	for _, a := range r.Actions {
		switch a.Kind {
		case atom.Restriction:
			n := e.compile(a.Tree)
			want := label.FromBool(a.Value)
			node := &e.g.Nodes[n]
			if node.Label.IsBool() && node.Label != want && node.Whitelist.Has(want) {
				// fixed inputs determine the node; narrowing alone would not notice
				e.sink.Errorf(diag.Encode, "node %d restrictions made graph unsolvable: its inputs make it %s, restricted to %s",
					n, node.Label, want)
			}
			e.narrow(n, label.Of(want))
		default:
			atom.Violate(ErrUnsupportedAction, "%s action in graph encoder", a.Kind)
		}
	}
	if r.Unsatisfiable {
		// a node no color fits keeps the graph uncolorable
		n := e.node(label.Null)
		e.sink.Errorf(diag.Encode, "program contains a trivially unsolvable force statement")
		e.g.Nodes[n].Whitelist = label.None
	}
	for i := range e.g.Nodes {
		e.connectWithWhitelist(i)
	}
	if debug.Encode() {
		debug.Logf("encode: %d nodes, %d edges\n", e.g.Len(), len(e.g.Edges()))
	}
	return e.g
}

type encoder struct {
	root *atom.Root
	sink *diag.Sink
	g    *Graph
	// vars maps a variable to the node holding its value.
	vars map[atom.ID]int
	// seeds maps each seed, by identity, to its node.
	seeds  *atom.Table[int]
	active map[atom.ID]bool
}

func (e *encoder) node(l label.Label) int {
	e.g.Nodes = append(e.g.Nodes, Node{Label: l, Whitelist: label.All})
	return len(e.g.Nodes) - 1
}

func (e *encoder) basis(l label.Label) int {
	n := e.node(l)
	e.narrow(n, label.Of(l))
	return n
}

// narrow intersects the whitelist of n with w.
func (e *encoder) narrow(n int, w label.Set) {
	node := &e.g.Nodes[n]
	res := node.Whitelist.Intersect(w)
	if res.Empty() && !node.Whitelist.Empty() {
		e.sink.Errorf(diag.Encode, "node %d restrictions made graph unsolvable: %s does not admit %s",
			n, node.Whitelist, w)
	}
	node.Whitelist = res
}

func (e *encoder) forceBool(n int) {
	e.narrow(n, label.Boolean)
}

func (e *encoder) forceBoolNeutral(n int) {
	e.narrow(n, label.All)
}

func (e *encoder) link(a, b int) {
	e.g.Nodes[a].Edges = append(e.g.Nodes[a].Edges, b)
	e.g.Nodes[b].Edges = append(e.g.Nodes[b].Edges, a)
}

// connect links two gadget nodes, reporting a construction defect if both
// are meant to take the same color.
func (e *encoder) connect(a, b int) {
	e.link(a, b)
	la, lb := e.g.Nodes[a].Label, e.g.Nodes[b].Label
	if la != label.Null && la == lb {
		e.sink.Internalf(diag.Encode, "adjacent nodes %d and %d both labeled %s", a, b, la)
	}
}

// connectWithWhitelist connects n to the basis node of each color outside
// its whitelist.
func (e *encoder) connectWithWhitelist(n int) {
	w := e.g.Nodes[n].Whitelist
	for _, l := range label.Basis() {
		if !w.Has(l) {
			e.link(n, e.g.Basis(l))
		}
	}
}

// seed returns the node of seed t, allocating it on first use.
func (e *encoder) seed(t *atom.Tree) int {
	if n, ok := e.seeds.Get(t); ok {
		return n
	}
	n := e.node(t.Label)
	if t.Label.IsBool() {
		e.narrow(n, label.Of(t.Label))
	}
	e.seeds.Put(t, n)
	return n
}

func (e *encoder) compile(t *atom.Tree) int {
	switch t.Kind {
	case atom.VariableKind:
		if n, ok := e.vars[t.ID]; ok {
			return n
		}
		return e.compileVar(t.ID)
	case atom.SeedKind:
		return e.seed(t)
	case atom.NotKind:
		return e.not(e.compile(t.Arg()))
	case atom.OrKind:
		switch len(t.Args) {
		case 1:
			return e.compile(t.Args[0])
		case 2:
			return e.or(e.compile(t.Args[0]), e.compile(t.Args[1]))
		}
		atom.Violate(ErrWideOr, "%d operands in %s", len(t.Args), t)
	case atom.ConstKind:
		atom.Violate(ErrConstInEncoder, "%s", t)
	case atom.MarkerKind:
		atom.Violate(ErrMarkerInEncoder, "%s", t)
	}
	panic("graph: unknown tree kind " + t.Kind.String())
}

func (e *encoder) compileVar(id atom.ID) int {
	if e.active[id] {
		atom.Violate(atom.ErrSelfReference, "%s is reachable from its own definition", id)
	}
	def := e.root.Lookup(id)
	var n int
	switch def.Tree.Kind {
	case atom.ConstKind:
		atom.Violate(ErrConstInEncoder, "definition of %s is %s", id, def.Tree)
	case atom.SeedKind:
		n = e.seed(def.Tree)
	default:
		e.active[id] = true
		n = e.compile(def.Tree)
		delete(e.active, id)
	}
	e.vars[id] = n
	return n
}

// not builds the negation of in: a boolean node adjacent to in.
func (e *encoder) not(in int) int {
	e.forceBool(in)
	out := e.node(e.g.Nodes[in].Label.Not())
	e.forceBool(out)
	e.connect(in, out)
	return out
}

// or builds the disjunction gadget over a and b and returns its output.
func (e *encoder) or(a, b int) int {
	e.forceBool(a)
	e.forceBool(b)
	la, lb := e.g.Nodes[a].Label, e.g.Nodes[b].Label
	res := la.Or(lb)
	l := orLabels(res, lb)

	c1 := e.node(l.c1)
	e.forceBoolNeutral(c1)
	e.connect(a, c1)
	e.connect(b, c1)

	a1 := e.node(l.a1)
	e.forceBoolNeutral(a1)
	e.connect(a, a1)

	b1 := e.node(l.b1)
	e.forceBoolNeutral(b1)
	e.connect(b, b1)
	e.connect(a1, b1)

	c2 := e.node(l.c2)
	e.narrow(c2, label.Of(label.False, label.Neutral))
	e.connect(c2, c1)

	out := e.node(res)
	e.forceBool(out)
	e.connect(out, c2)
	e.connect(out, a1)
	e.connect(out, b1)
	return out
}

type gadgetLabels struct {
	c1, a1, b1, c2 label.Label
}

// orLabels returns the intended colors of the auxiliary nodes of the
// disjunction gadget given its result and its second input.
func orLabels(res, b label.Label) gadgetLabels {
	if res == label.Null {
		return gadgetLabels{}
	}
	if res == label.False {
		return gadgetLabels{c1: label.True, a1: label.Neutral, b1: label.True, c2: label.Neutral}
	}
	if b == label.False {
		return gadgetLabels{c1: label.Neutral, a1: label.False, b1: label.Neutral, c2: label.False}
	}
	return gadgetLabels{c1: label.Neutral, a1: label.Neutral, b1: label.False, c2: label.False}
}
