package atom

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit structural hash of t. Or operands contribute
// independently of their order and multiplicity: the hashes of the distinct
// operand hashes are XOR-combined. Markers hash differently from their
// operand. It panics if t is nil.
func (t *Tree) Hash() uint64 {
	if t == nil {
		panic("atom: Hash called on nil tree")
	}
	if t.hashed {
		return t.hash
	}
	var b [9]byte
	b[0] = byte(t.Kind)
	switch t.Kind {
	case SeedKind:
		binary.LittleEndian.PutUint64(b[1:], t.seed)
	case VariableKind:
		binary.LittleEndian.PutUint64(b[1:], uint64(t.ID))
	case ConstKind:
		if t.Value {
			b[1] = 1
		}
	case NotKind, MarkerKind:
		binary.LittleEndian.PutUint64(b[1:], t.Args[0].Hash())
	case OrKind:
		hs := make([]uint64, len(t.Args))
		for i, a := range t.Args {
			hs[i] = a.Hash()
		}
		slices.Sort(hs)
		hs = slices.Compact(hs)
		var x uint64
		for _, h := range hs {
			x ^= h
		}
		binary.LittleEndian.PutUint64(b[1:], x)
	}
	t.hash = xxhash.Sum64(b[:])
	t.hashed = true
	return t.hash
}
