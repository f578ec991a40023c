package rewrite

import (
	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/debug"
	"github.com/colorc/colorc/diag"
)

// Force propagates restrictions. A restricted variable is known to hold its
// restricted value everywhere else in the program, since the graph would be
// unsolvable otherwise, so every other use is replaced by a constant. The
// restriction itself is wrapped in a marker to survive that substitution.
// Restrictions of negations and of false disjunctions are pushed inward and
// trivially decidable restrictions are reported and dropped.
func Force(r *atom.Root, sink *diag.Sink) bool {
	f := &forcer{
		root:   r,
		sink:   sink,
		subst:  map[atom.ID]*atom.Tree{},
		forced: map[atom.ID]bool{},
	}
	var added []atom.Action
	keep := make([]atom.Action, 0, len(r.Actions))
	for _, a := range r.Actions {
		if a.Kind != atom.Restriction {
			keep = append(keep, a)
			continue
		}
		t := a.Tree
		switch t.Kind {
		case atom.VariableKind:
			if f.variable(&a, t.ID) {
				a.Tree = atom.Marker(t)
				keep = append(keep, a)
			}
		case atom.MarkerKind:
			if inner := t.Arg(); inner.Kind == atom.VariableKind {
				if f.variable(&a, inner.ID) {
					keep = append(keep, a)
				}
				continue
			}
			// the marked variable has been replaced since it was recorded
			a.Tree = t.Arg()
			f.changed = true
			keep = append(keep, a)
		case atom.NotKind:
			a.Tree = t.Arg()
			a.Value = !a.Value
			f.changed = true
			keep = append(keep, a)
		case atom.OrKind:
			if a.Value {
				keep = append(keep, a)
				continue
			}
			for _, op := range t.Args {
				added = append(added, atom.Action{Kind: atom.Restriction, Tree: op, Value: false, Span: a.Span})
			}
			f.changed = true
		case atom.ConstKind:
			f.trivial(&a, t.Value)
		case atom.SeedKind:
			if v, ok := t.Label.Bool(); ok {
				f.trivial(&a, v)
				continue
			}
			keep = append(keep, a)
		default:
			keep = append(keep, a)
		}
	}
	r.Actions = append(keep, added...)
	if len(f.subst) != 0 {
		n := 0
		r.Map(func(t *atom.Tree) *atom.Tree {
			return substitute(t, f.subst, false, &n)
		})
		if n != 0 {
			f.changed = true
		}
		if debug.Force() {
			debug.Logf("force: %d variables, %d uses replaced\n", len(f.subst), n)
		}
	}
	return f.changed
}

type forcer struct {
	root    *atom.Root
	sink    *diag.Sink
	subst   map[atom.ID]*atom.Tree
	forced  map[atom.ID]bool
	changed bool
}

// variable records a restriction of id, reporting whether the action is to
// be kept.
func (f *forcer) variable(a *atom.Action, id atom.ID) bool {
	if def, ok := f.root.Definitions[id]; ok && def.Tree.Kind == atom.SeedKind {
		if v, ok := def.Tree.Label.Bool(); ok {
			if v == a.Value {
				f.subst[id] = atom.Const(v)
			}
			f.trivial(a, v)
			return false
		}
	}
	if prev, ok := f.forced[id]; ok {
		if prev != a.Value {
			f.contradiction(a)
		}
		f.changed = true
		return false
	}
	f.forced[id] = a.Value
	f.subst[id] = atom.Const(a.Value)
	return true
}

// trivial settles a restriction whose target is known to evaluate to v.
func (f *forcer) trivial(a *atom.Action, v bool) {
	f.changed = true
	if v == a.Value {
		f.sink.Add(diag.Diagnostic{
			Severity: diag.Info,
			Stage:    diag.Force,
			Message:  "force statement is trivially always successful",
			Span:     a.Span,
		})
		return
	}
	f.contradiction(a)
}

func (f *forcer) contradiction(a *atom.Action) {
	f.root.Unsatisfiable = true
	f.sink.Add(diag.Diagnostic{
		Severity: diag.Warning,
		Stage:    diag.Force,
		Message:  "force statement makes graph trivially unsolvable",
		Span:     a.Span,
	})
}
