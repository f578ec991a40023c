// Package graph lowers a finalized atom.Root to an undirected graph whose
// valid 3-colorings are the satisfying assignments of the program.
//
// Nodes live in one append-only arena and are referred to by index. The
// first three nodes are the basis nodes for True, False and Neutral. Every
// node carries a whitelist of colors it may still take. Once the whole
// program is lowered each node is connected to the basis node of every
// color missing from its whitelist, so that adjacency alone enforces it.
package graph

import (
	"slices"

	"github.com/colorc/colorc/label"
)

type Node struct {
	Edges     []int
	Label     label.Label
	Whitelist label.Set
}

type Graph struct {
	Nodes []Node

	True, False, Neutral int
}

func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Basis returns the index of the basis node for l.
func (g *Graph) Basis(l label.Label) int {
	switch l {
	case label.True:
		return g.True
	case label.False:
		return g.False
	case label.Neutral:
		return g.Neutral
	}
	panic("graph: no basis node for " + l.String())
}

// Neighbors returns the distinct neighbors of node i in ascending order.
func (g *Graph) Neighbors(i int) []int {
	ns := slices.Clone(g.Nodes[i].Edges)
	slices.Sort(ns)
	return slices.Compact(ns)
}

// Edges returns each distinct undirected edge once, as (lo, hi) pairs in
// ascending order.
func (g *Graph) Edges() [][2]int {
	var res [][2]int
	for i := range g.Nodes {
		for _, j := range g.Neighbors(i) {
			if i < j {
				res = append(res, [2]int{i, j})
			}
		}
	}
	return res
}

// Adjacent reports whether i and j share an edge.
func (g *Graph) Adjacent(i, j int) bool {
	return slices.Contains(g.Nodes[i].Edges, j)
}
