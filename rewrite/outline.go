package rewrite

import (
	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
)

// OutlineCommon gives every negation or disjunction that occurs more than
// once in r its own definition and replaces the occurrences by references.
// Structurally equal subtrees share one definition. A definition whose whole
// body is such a subtree becomes the shared definition itself. It returns
// the number of subtrees outlined.
func OutlineCommon(r *atom.Root) int {
	o := &outliner{
		root:     r,
		counts:   atom.NewTable[int](),
		outlined: atom.NewTable[atom.ID](),
	}
	r.Walk(o.count)
	for _, id := range r.IDs() {
		def := r.Definitions[id]
		def.Tree = o.outline(def.Tree, id, true)
	}
	for i := range r.Actions {
		a := &r.Actions[i]
		if a.Tree != nil {
			a.Tree = o.outline(a.Tree, 0, false)
		}
		for j, e := range a.Exprs {
			a.Exprs[j] = o.outline(e, 0, false)
		}
	}
	if debug.Inline() {
		debug.Logf("outline: %d common subexpressions\n", o.outlined.Len())
	}
	return o.outlined.Len()
}

type outliner struct {
	root     *atom.Root
	counts   *atom.Table[int]
	outlined *atom.Table[atom.ID]
}

func shareable(t *atom.Tree) bool {
	return t.Kind == atom.NotKind || t.Kind == atom.OrKind
}

func (o *outliner) count(t *atom.Tree) {
	if shareable(t) {
		n, _ := o.counts.Get(t)
		o.counts.Put(t, n+1)
	}
	for _, a := range t.Args {
		o.count(a)
	}
}

// outline rewrites t bottom up. If isDef is set, t is the body of
// definition self.
func (o *outliner) outline(t *atom.Tree, self atom.ID, isDef bool) *atom.Tree {
	if len(t.Args) == 0 {
		return t
	}
	res := mapArgs(t, func(a *atom.Tree) *atom.Tree {
		return o.outline(a, 0, false)
	})
	if !shareable(t) {
		return res
	}
	if n, _ := o.counts.Get(t); n < 2 {
		return res
	}
	if id, ok := o.outlined.Get(res); ok {
		return atom.Var(id)
	}
	if isDef {
		o.outlined.Put(res, self)
		return res
	}
	id := o.root.Define(res)
	o.outlined.Put(res, id)
	return atom.Var(id)
}
