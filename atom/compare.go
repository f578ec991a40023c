package atom

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b are structurally equal. Or operands are
// compared as sets, so Or(x, y) equals Or(y, x, y).
func Equal(a, b *Tree) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case SeedKind:
		return a.seed == b.seed
	case VariableKind:
		return a.ID == b.ID
	case ConstKind:
		return a.Value == b.Value
	case NotKind, MarkerKind:
		return Equal(a.Args[0], b.Args[0])
	case OrKind:
		if a.Hash() != b.Hash() {
			return false
		}
		return subset(a.Args, b.Args) && subset(b.Args, a.Args)
	}
	return false
}

func subset(xs, ys []*Tree) bool {
outer:
	for _, x := range xs {
		for _, y := range ys {
			if Equal(x, y) {
				continue outer
			}
		}
		return false
	}
	return true
}

// Compare is a total order on trees used to put Or operands in canonical
// order: by kind, then by the kind specific payload, then by hash, then by
// operands. Trees compare 0 exactly when they are Equal.
func Compare(a, b *Tree) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	switch a.Kind {
	case SeedKind:
		return cmp.Compare(a.seed, b.seed)
	case VariableKind:
		return cmp.Compare(a.ID, b.ID)
	case ConstKind:
		return cmp.Compare(b2i(a.Value), b2i(b.Value))
	}
	if c := cmp.Compare(a.Hash(), b.Hash()); c != 0 {
		return c
	}
	switch a.Kind {
	case NotKind, MarkerKind:
		return Compare(a.Args[0], b.Args[0])
	case OrKind:
		return slices.CompareFunc(canonical(a.Args), canonical(b.Args), Compare)
	}
	return 0
}

// canonical returns the distinct elements of ts in Compare order.
func canonical(ts []*Tree) []*Tree {
	res := slices.Clone(ts)
	slices.SortFunc(res, Compare)
	return slices.CompactFunc(res, Equal)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
