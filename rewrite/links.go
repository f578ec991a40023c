package rewrite

import (
	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
)

// RemoveLinks inlines definitions which are a bare variable or a constant
// and deletes them. Of two definitions aliasing each other only one is
// removed per call, so callers repeat until it returns false.
func RemoveLinks(r *atom.Root) bool {
	table := map[atom.ID]*atom.Tree{}
	exclude := map[atom.ID]bool{}
	for _, id := range r.IDs() {
		if exclude[id] {
			continue
		}
		t := r.Definitions[id].Tree
		switch t.Kind {
		case atom.VariableKind:
			if t.ID == id {
				atom.Violate(atom.ErrSelfReference, "%s is defined as itself", id)
			}
			if _, ok := table[t.ID]; ok {
				continue
			}
			table[id] = t
			exclude[t.ID] = true
		case atom.ConstKind:
			table[id] = t
		}
	}
	if len(table) == 0 {
		return false
	}
	n := 0
	r.Map(func(t *atom.Tree) *atom.Tree {
		return substitute(t, table, true, &n)
	})
	for id := range table {
		delete(r.Definitions, id)
	}
	if debug.Links() {
		debug.Logf("links: removed %d definitions, %d uses replaced\n", len(table), n)
	}
	return true
}
