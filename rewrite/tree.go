package rewrite

import "github.com/colorc/colorc/atom"

// mapArgs rebuilds t with f applied to its operands, returning t itself when
// no operand changed.
func mapArgs(t *atom.Tree, f func(*atom.Tree) *atom.Tree) *atom.Tree {
	var args []*atom.Tree
	for i, a := range t.Args {
		b := f(a)
		if b != a && args == nil {
			args = make([]*atom.Tree, len(t.Args))
			copy(args, t.Args[:i])
		}
		if args != nil {
			args[i] = b
		}
	}
	if args == nil {
		return t
	}
	return t.WithArgs(args)
}

// substitute replaces every variable in table by its tree. Replacements are
// not themselves substituted. Unless intoMarkers is set, marked subtrees are
// left alone. n counts the replacements.
func substitute(t *atom.Tree, table map[atom.ID]*atom.Tree, intoMarkers bool, n *int) *atom.Tree {
	switch t.Kind {
	case atom.VariableKind:
		if r, ok := table[t.ID]; ok {
			*n++
			return r
		}
		return t
	case atom.MarkerKind:
		if !intoMarkers {
			return t
		}
		fallthrough
	case atom.NotKind, atom.OrKind:
		return mapArgs(t, func(a *atom.Tree) *atom.Tree {
			return substitute(a, table, intoMarkers, n)
		})
	}
	return t
}
