package rewrite

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/diag"
	"github.com/colorc/colorc/label"
	"github.com/colorc/colorc/solve"
)

func TestForce(t *testing.T) {
	tests := []struct {
		name  string
		build func(r *atom.Root)
		want  string
		// severities of the diagnostics raised
		diags []diag.Severity
		unsat bool
	}{
		{
			name: "variable",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				r.DefineNamed("y", atom.Not(atom.Var(x)))
				r.Restrict(atom.Var(x), true)
			},
			want: "v0 \"x\" = seed(NULL)\nv1 \"y\" = (not true)\nforce (keep x) => true\n",
		},
		{
			name: "negation",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				r.Restrict(atom.Not(atom.Var(x)), false)
			},
			want: "v0 \"x\" = seed(NULL)\nforce x => true\n",
		},
		{
			name: "false disjunction",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				y := r.DefineNamed("y", atom.Seed(label.Null))
				r.Restrict(atom.Or(atom.Var(x), atom.Var(y)), false)
			},
			want: "v0 \"x\" = seed(NULL)\nv1 \"y\" = seed(NULL)\nforce x => false\nforce y => false\n",
		},
		{
			name: "trivially true",
			build: func(r *atom.Root) {
				r.Restrict(atom.True(), true)
			},
			want:  "",
			diags: []diag.Severity{diag.Info},
		},
		{
			name: "trivially false",
			build: func(r *atom.Root) {
				r.Restrict(atom.True(), false)
			},
			want:  "unsatisfiable\n",
			diags: []diag.Severity{diag.Warning},
			unsat: true,
		},
		{
			name: "fixed seed",
			build: func(r *atom.Root) {
				r.Restrict(atom.Seed(label.False), false)
			},
			want:  "",
			diags: []diag.Severity{diag.Info},
		},
		{
			name: "fixed seed variable",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.True))
				r.DefineNamed("y", atom.Or(atom.Var(x), atom.Seed(label.Null)))
				r.Restrict(atom.Var(x), true)
			},
			want:  "v0 \"x\" = seed(TRUE)\nv1 \"y\" = (or true seed(NULL))\n",
			diags: []diag.Severity{diag.Info},
		},
		{
			name: "fixed seed variable contradicted",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.True))
				r.DefineNamed("y", atom.Not(atom.Var(x)))
				r.Restrict(atom.Var(x), false)
			},
			want:  "v0 \"x\" = seed(TRUE)\nv1 \"y\" = (not x)\nunsatisfiable\n",
			diags: []diag.Severity{diag.Warning},
			unsat: true,
		},
		{
			name: "duplicate",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				r.Restrict(atom.Var(x), false)
				r.Restrict(atom.Var(x), false)
			},
			want: "v0 \"x\" = seed(NULL)\nforce (keep x) => false\n",
		},
		{
			name: "contradiction",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				r.Restrict(atom.Var(x), false)
				r.Restrict(atom.Var(x), true)
			},
			want:  "v0 \"x\" = seed(NULL)\nforce (keep x) => false\nunsatisfiable\n",
			diags: []diag.Severity{diag.Warning},
			unsat: true,
		},
		{
			name: "output",
			build: func(r *atom.Root) {
				x := r.DefineNamed("x", atom.Seed(label.Null))
				r.Restrict(atom.Var(x), true)
				r.Output([]string{"x is ", ""}, atom.Var(x))
			},
			want: "v0 \"x\" = seed(NULL)\nforce (keep x) => true\noutput [\"x is \" \"\"] true\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := atom.NewRoot()
			tt.build(r)
			sink := diag.NewSink()
			if !Force(r, sink) {
				t.Error("Force reported no change")
			}
			if diff := cmp.Diff(tt.want, r.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			var sevs []diag.Severity
			for _, d := range sink.Diagnostics() {
				sevs = append(sevs, d.Severity)
				if d.Stage != diag.Force {
					t.Errorf("diagnostic at stage %s", d.Stage)
				}
			}
			if diff := cmp.Diff(tt.diags, sevs); diff != "" {
				t.Errorf("diagnostics (-want +got):\n%s", diff)
			}
			if r.Unsatisfiable != tt.unsat {
				t.Errorf("unsatisfiable = %t", r.Unsatisfiable)
			}
		})
	}
}

func TestForceMarkerPersists(t *testing.T) {
	r := atom.NewRoot()
	x := r.DefineNamed("x", atom.Seed(label.Null))
	r.Restrict(atom.Var(x), true)
	Force(r, nil)
	if Force(r, nil) {
		t.Errorf("second Force changed %s", r)
	}
	// a use introduced later is still rewritten
	r.DefineNamed("y", atom.Not(atom.Var(x)))
	if !Force(r, nil) {
		t.Error("Force did not rewrite the new use")
	}
	want := "v0 \"x\" = seed(NULL)\nv1 \"y\" = (not true)\nforce (keep x) => true\n"
	if diff := cmp.Diff(want, r.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestForceUnwrapsStaleMarker(t *testing.T) {
	r := atom.NewRoot()
	r.Restrict(atom.Marker(atom.Not(atom.Seed(label.Null))), true)
	if !Force(r, nil) {
		t.Fatal("no change")
	}
	if got := r.Actions[0].Tree.Kind; got != atom.NotKind {
		t.Errorf("restriction of kind %s", got)
	}
}

// settle runs the light passes to a fixed point.
func settle(t *testing.T, r *atom.Root, sink *diag.Sink) {
	t.Helper()
	for i := 0; i < 100; i++ {
		changed := SimplifyRoot(r, sink)
		for RemoveLinks(r) {
			changed = true
		}
		if !changed {
			return
		}
	}
	t.Fatalf("no fixed point:\n%s", r)
}

// TestForcePreservesSatisfiability checks that force propagation, which
// pushes negations and false disjunctions inward, decides every program
// over two fixed inputs the same way as evaluating it directly.
func TestForcePreservesSatisfiability(t *testing.T) {
	shapes := []struct {
		name string
		mk   func(a, b *atom.Tree) *atom.Tree
	}{
		{"and", func(a, b *atom.Tree) *atom.Tree { return atom.And(a, b) }},
		{"or", func(a, b *atom.Tree) *atom.Tree { return atom.Or(a, b) }},
		{"nor", func(a, b *atom.Tree) *atom.Tree { return atom.Not(atom.Or(a, b)) }},
		{"nand", func(a, b *atom.Tree) *atom.Tree { return atom.Not(atom.And(a, b)) }},
		{"implies", func(a, b *atom.Tree) *atom.Tree { return atom.Or(atom.Not(a), b) }},
		{"de morgan", func(a, b *atom.Tree) *atom.Tree {
			return atom.Or(atom.Not(atom.Or(a, b)), atom.And(atom.Not(a), atom.Not(b)))
		}},
	}
	bools := []label.Label{label.True, label.False, label.Null}
	for _, sh := range shapes {
		for _, la := range bools {
			for _, lb := range bools {
				for _, v := range []bool{false, true} {
					r := atom.NewRoot()
					a := r.DefineNamed("a", atom.Seed(la))
					b := r.DefineNamed("b", atom.Seed(lb))
					r.Restrict(sh.mk(atom.Var(a), atom.Var(b)), v)
					_, want := solve.Satisfy(r.Clone())

					settle(t, r, nil)
					_, got := solve.Satisfy(r)
					if got != want {
						t.Errorf("%s(%s, %s) => %t: satisfiable %t after forcing, %t before:\n%s",
							sh.name, la, lb, v, got, want, r)
					}
				}
			}
		}
	}
}
