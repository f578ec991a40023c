package rewrite

import (
	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
)

// InlineAll expands every definition into each of its uses, except seed
// definitions, which stay referenced so their origin is kept. Afterwards
// only seed definitions remain.
//
// It panics with atom.ErrSelfReference if a definition is reachable from
// itself.
func InlineAll(r *atom.Root) {
	in := &inliner{
		root:     r,
		expanded: map[atom.ID]*atom.Tree{},
		active:   map[atom.ID]bool{},
	}
	r.Map(in.expand)
	pruned := 0
	for id, def := range r.Definitions {
		if def.Tree.Kind != atom.SeedKind {
			delete(r.Definitions, id)
			pruned++
		}
	}
	if debug.Inline() {
		debug.Logf("inline: expanded %d definitions, pruned %d\n", len(in.expanded), pruned)
	}
}

type inliner struct {
	root     *atom.Root
	expanded map[atom.ID]*atom.Tree
	active   map[atom.ID]bool
}

func (in *inliner) expand(t *atom.Tree) *atom.Tree {
	switch t.Kind {
	case atom.VariableKind:
		if e, ok := in.expanded[t.ID]; ok {
			return e
		}
		def := in.root.Lookup(t.ID)
		if def.Tree.Kind == atom.SeedKind {
			return t
		}
		if in.active[t.ID] {
			atom.Violate(atom.ErrSelfReference, "%s is reachable from its own definition", t.ID)
		}
		in.active[t.ID] = true
		e := in.expand(def.Tree)
		delete(in.active, t.ID)
		in.expanded[t.ID] = e
		return e
	case atom.NotKind, atom.OrKind, atom.MarkerKind:
		return mapArgs(t, in.expand)
	}
	return t
}
