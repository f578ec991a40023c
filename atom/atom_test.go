package atom

import (
	"errors"
	"testing"

	"github.com/colorc/colorc/label"
)

func TestEqual(t *testing.T) {
	x, y := Var(1), Var(2)
	s := Seed(label.True)
	tests := []struct {
		name string
		a, b *Tree
		want bool
	}{
		{"vars", Var(1), Var(1), true},
		{"distinct vars", x, y, false},
		{"consts", True(), Const(true), true},
		{"const vs var", True(), x, false},
		{"or order", Or(x, y), Or(y, x), true},
		{"or duplicates", Or(x, y, x), Or(y, x), true},
		{"or subset", Or(x), Or(x, y), false},
		{"nested or order", Not(Or(x, Not(y))), Not(Or(Not(Var(2)), Var(1))), true},
		{"marker is not its operand", Marker(x), x, false},
		{"markers", Marker(x), Marker(Var(1)), true},
		{"same seed", s, s, true},
		{"seed identity", Seed(label.True), Seed(label.True), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal trees %s and %s hash differently", tt.a, tt.b)
			}
		})
	}
}

func TestTable(t *testing.T) {
	m := NewTable[ID]()
	if !m.Put(Or(Var(1), Not(Var(2))), 7) {
		t.Fatal("expected new entry")
	}
	if m.Put(Or(Not(Var(2)), Var(1)), 8) {
		t.Fatal("expected existing entry")
	}
	v, ok := m.Get(Or(Not(Var(2)), Var(1), Var(1)))
	if !ok || v != 8 {
		t.Errorf("Get() = %v, %v", v, ok)
	}
	if _, ok := m.Get(Or(Var(1), Var(2))); ok {
		t.Errorf("unexpected hit")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d", m.Len())
	}
}

func TestDefineMonotonic(t *testing.T) {
	r := NewRoot()
	a := r.Define(Seed(label.Null))
	b := r.DefineNamed("b", Not(Var(a)))
	delete(r.Definitions, a)
	c := r.Define(True())
	if !(a < b && b < c) {
		t.Errorf("ids not increasing: %d %d %d", a, b, c)
	}
	if r.NextID() != c+1 {
		t.Errorf("NextID() = %d", r.NextID())
	}
}

func TestLookupDangling(t *testing.T) {
	r := NewRoot()
	defer func() {
		e := recover()
		err, ok := e.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", e)
		}
		if !errors.Is(err, ErrDanglingVariable) || !errors.Is(err, ErrInvariant) {
			t.Errorf("unexpected error %v", err)
		}
	}()
	r.Lookup(3)
}

func TestRootString(t *testing.T) {
	r := NewRoot()
	x := r.DefineNamed("x", Seed(label.False))
	y := r.Define(Or(Var(x), Not(True())))
	r.Restrict(Var(y), true)
	r.Output([]string{"x=", ""}, Var(x))
	want := `v0 "x" = seed(FALSE)
v1 = (or x (not true))
force v1 => true
output ["x=" ""] x
`
	if got := r.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestClone(t *testing.T) {
	r := NewRoot()
	x := r.Define(Seed(label.Null))
	r.Restrict(Var(x), true)
	c := r.Clone()
	c.Definitions[x].Tree = True()
	c.Actions[0].Value = false
	if r.Definitions[x].Tree.Kind != SeedKind || !r.Actions[0].Value {
		t.Errorf("clone aliases original")
	}
	if c.NextID() != r.NextID() {
		t.Errorf("clone lost id counter")
	}
}

// collide gives t a fixed hash so that unequal trees share it.
func collide(t *Tree) *Tree {
	t.hash, t.hashed = 42, true
	return t
}

func TestCompareHashCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b *Tree
		want int
	}{
		{"not", collide(Not(Var(1))), collide(Not(Var(2))), -1},
		{"marker", collide(Marker(Var(3))), collide(Marker(Var(2))), 1},
		{"or", collide(Or(Var(1), Var(3))), collide(Or(Var(3), Var(2))), -1},
		{"or prefix", collide(Or(Var(1))), collide(Or(Var(1), Var(2))), -1},
		{"or as set", collide(Or(Var(1), Var(3))), collide(Or(Var(3), Var(1), Var(3))), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
			if eq := Equal(tt.a, tt.b); eq != (tt.want == 0) {
				t.Errorf("Equal(%s, %s) = %t", tt.a, tt.b, eq)
			}
		})
	}
}
