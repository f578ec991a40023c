package rewrite

import (
	"slices"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
	"github.com/colorc/colorc/diag"
)

// Simplify rewrites t bottom up with the local algebraic rules until none
// applies, setting *changed if anything was rewritten.
func Simplify(t *atom.Tree, changed *bool) *atom.Tree {
	switch t.Kind {
	case atom.NotKind, atom.OrKind, atom.MarkerKind:
		t = mapArgs(t, func(a *atom.Tree) *atom.Tree {
			return Simplify(a, changed)
		})
	}
	for {
		next, ok := simp(t)
		if !ok {
			return t
		}
		if debug.Simp() {
			debug.Logf("simp %s => %s\n", t, next)
		}
		*changed = true
		t = next
	}
}

// simp applies the first matching local rule to t.
func simp(t *atom.Tree) (*atom.Tree, bool) {
	switch t.Kind {
	case atom.NotKind:
		a := t.Arg()
		switch a.Kind {
		case atom.NotKind:
			return a.Arg(), true
		case atom.ConstKind:
			return atom.Const(!a.Value), true
		}
	case atom.OrKind:
		return simpOr(t)
	}
	return t, false
}

func simpOr(t *atom.Tree) (*atom.Tree, bool) {
	var (
		seen    = atom.NewSet()
		ops     = make([]*atom.Tree, 0, len(t.Args))
		changed bool
	)
	add := func(a *atom.Tree) {
		if seen.Add(a) {
			ops = append(ops, a)
			return
		}
		changed = true
	}
	for _, a := range t.Args {
		switch a.Kind {
		case atom.ConstKind:
			if a.Value {
				return atom.True(), true
			}
			changed = true
		case atom.OrKind:
			for _, b := range a.Args {
				add(b)
			}
			changed = true
		default:
			add(a)
		}
	}
	switch len(ops) {
	case 0:
		return atom.False(), true
	case 1:
		return ops[0], true
	}
	if !slices.IsSortedFunc(ops, atom.Compare) {
		slices.SortStableFunc(ops, atom.Compare)
		changed = true
	}
	if !changed {
		return t, false
	}
	return atom.Or(ops...), true
}

// SimplifyRoot runs Force and then Simplify over every tree of r, reporting
// whether either changed anything.
func SimplifyRoot(r *atom.Root, sink *diag.Sink) bool {
	changed := Force(r, sink)
	r.Map(func(t *atom.Tree) *atom.Tree {
		return Simplify(t, &changed)
	})
	return changed
}
