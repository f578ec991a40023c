package solve

import (
	"strconv"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/colorc/colorc/atom"
)

// Solution is a satisfying assignment of a program.
type Solution struct {
	// Outputs holds one rendered line per output action.
	Outputs []string
	// Inputs maps each unknown seed definition to its chosen value.
	Inputs map[atom.ID]bool
}

// Satisfy reports whether every restriction of r can hold at once. Seeds
// with a definite label are fixed; unknown seeds are free inputs.
func Satisfy(r *atom.Root) (*Solution, bool) {
	b := &circuitBuilder{
		root:  r,
		c:     logic.NewC(),
		vars:  map[atom.ID]z.Lit{},
		seeds: atom.NewTable[z.Lit](),
	}
	conj := []z.Lit{b.c.T}
	if r.Unsatisfiable {
		conj = append(conj, b.c.F)
	}
	var outs [][]z.Lit
	for _, a := range r.Actions {
		switch a.Kind {
		case atom.Restriction:
			m := b.build(a.Tree)
			if !a.Value {
				m = m.Not()
			}
			conj = append(conj, m)
		case atom.Output:
			lits := make([]z.Lit, len(a.Exprs))
			for i, e := range a.Exprs {
				lits[i] = b.build(e)
			}
			outs = append(outs, lits)
		}
	}
	inputs := map[atom.ID]z.Lit{}
	for _, id := range r.IDs() {
		def := r.Definitions[id]
		if def.Tree.Kind == atom.SeedKind && !def.Tree.Label.IsBool() {
			inputs[id] = b.build(atom.Var(id))
		}
	}
	formula := b.c.Ands(conj...)

	g := gini.New()
	b.c.ToCnf(g)
	// mention every input so the solver sizes its model to cover them
	for _, id := range r.IDs() {
		if m, ok := inputs[id]; ok {
			g.Add(m)
			g.Add(b.c.T)
			g.Add(0)
		}
	}
	g.Add(b.c.T)
	g.Add(0)
	g.Assume(formula)
	if g.Solve() != 1 {
		return nil, false
	}
	sol := &Solution{Inputs: map[atom.ID]bool{}}
	for id, m := range inputs {
		sol.Inputs[id] = g.Value(m)
	}
	oi := 0
	for _, a := range r.Actions {
		if a.Kind != atom.Output {
			continue
		}
		sol.Outputs = append(sol.Outputs, render(a.Format, outs[oi], g))
		oi++
	}
	return sol, true
}

func render(format []string, lits []z.Lit, g *gini.Gini) string {
	buf := &strings.Builder{}
	for i, f := range format {
		buf.WriteString(f)
		if i < len(lits) {
			buf.WriteString(strconv.FormatBool(g.Value(lits[i])))
		}
	}
	for i := len(format); i < len(lits); i++ {
		buf.WriteString(strconv.FormatBool(g.Value(lits[i])))
	}
	return buf.String()
}

type circuitBuilder struct {
	root  *atom.Root
	c     *logic.C
	vars  map[atom.ID]z.Lit
	seeds *atom.Table[z.Lit]
}

func (b *circuitBuilder) build(t *atom.Tree) z.Lit {
	switch t.Kind {
	case atom.SeedKind:
		if v, ok := t.Label.Bool(); ok {
			return b.konst(v)
		}
		if m, ok := b.seeds.Get(t); ok {
			return m
		}
		m := b.c.Lit()
		b.seeds.Put(t, m)
		return m
	case atom.VariableKind:
		if m, ok := b.vars[t.ID]; ok {
			return m
		}
		m := b.build(b.root.Lookup(t.ID).Tree)
		b.vars[t.ID] = m
		return m
	case atom.ConstKind:
		return b.konst(t.Value)
	case atom.MarkerKind:
		return b.build(t.Arg())
	case atom.NotKind:
		return b.build(t.Arg()).Not()
	case atom.OrKind:
		lits := make([]z.Lit, len(t.Args))
		for i, a := range t.Args {
			lits[i] = b.build(a)
		}
		return b.c.Ors(lits...)
	}
	panic("solve: unknown tree kind " + t.Kind.String())
}

func (b *circuitBuilder) konst(v bool) z.Lit {
	if v {
		return b.c.T
	}
	return b.c.F
}
