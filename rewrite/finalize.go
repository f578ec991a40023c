package rewrite

import (
	"slices"

	"github.com/colorc/colorc/atom"
)

// Finalize strips every marker and splits each disjunction of more than two
// operands into a chain of binary ones, operands in canonical order. No
// rewrite pass may run on r afterwards.
func Finalize(r *atom.Root) {
	r.Map(finalize)
}

func finalize(t *atom.Tree) *atom.Tree {
	switch t.Kind {
	case atom.MarkerKind:
		return finalize(t.Arg())
	case atom.NotKind:
		return mapArgs(t, finalize)
	case atom.OrKind:
		t = mapArgs(t, finalize)
		if len(t.Args) <= 2 {
			return t
		}
		ops := slices.Clone(t.Args)
		slices.SortStableFunc(ops, atom.Compare)
		acc := atom.Or(ops[0], ops[1])
		for _, op := range ops[2:] {
			acc = atom.Or(acc, op)
		}
		return acc
	}
	return t
}
