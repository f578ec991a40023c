package atom

// Table is a map keyed by trees under structural equality.
type Table[V any] struct {
	buckets map[uint64][]entry[V]
	n       int
}

type entry[V any] struct {
	key *Tree
	val V
}

func NewTable[V any]() *Table[V] {
	return &Table[V]{buckets: map[uint64][]entry[V]{}}
}

func (m *Table[V]) Get(t *Tree) (V, bool) {
	for _, e := range m.buckets[t.Hash()] {
		if Equal(e.key, t) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Put sets the value for t, reporting whether t was newly added.
func (m *Table[V]) Put(t *Tree, v V) bool {
	h := t.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if Equal(bucket[i].key, t) {
			bucket[i].val = v
			return false
		}
	}
	m.buckets[h] = append(bucket, entry[V]{key: t, val: v})
	m.n++
	return true
}

func (m *Table[V]) Len() int {
	return m.n
}

// Set is a set of trees under structural equality.
type Set struct {
	t *Table[struct{}]
}

func NewSet() *Set {
	return &Set{t: NewTable[struct{}]()}
}

// Add adds t, reporting whether it was not already present.
func (s *Set) Add(t *Tree) bool {
	return s.t.Put(t, struct{}{})
}

func (s *Set) Has(t *Tree) bool {
	_, ok := s.t.Get(t)
	return ok
}

func (s *Set) Len() int {
	return s.t.Len()
}
