package solve

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/colorc/colorc/graph"
	"github.com/colorc/colorc/label"
)

// colorVar is the variable meaning "node n has color c".
func colorVar(n int, c label.Label) z.Lit {
	return z.Var(n*3 + int(c)).Pos()
}

// Colorable reports whether g has a proper 3-coloring extending its basis
// nodes' colors, and returns one if so. Only edges are considered: the
// whitelists are already expressed as edges to the basis nodes.
func Colorable(g *graph.Graph) ([]label.Label, bool) {
	s := gini.New()
	palette := label.Basis()
	for n := range g.Nodes {
		for _, c := range palette {
			s.Add(colorVar(n, c))
		}
		s.Add(0)
		for i, c := range palette {
			for _, d := range palette[i+1:] {
				s.Add(colorVar(n, c).Not())
				s.Add(colorVar(n, d).Not())
				s.Add(0)
			}
		}
	}
	for _, e := range g.Edges() {
		for _, c := range palette {
			s.Add(colorVar(e[0], c).Not())
			s.Add(colorVar(e[1], c).Not())
			s.Add(0)
		}
	}
	for _, c := range palette {
		s.Add(colorVar(g.Basis(c), c))
		s.Add(0)
	}
	if s.Solve() != 1 {
		return nil, false
	}
	res := make([]label.Label, len(g.Nodes))
	for n := range g.Nodes {
		for _, c := range palette {
			if s.Value(colorVar(n, c)) {
				res[n] = c
				break
			}
		}
	}
	return res, true
}
