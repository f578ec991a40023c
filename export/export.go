// Package export writes a graph as the pair of CSV tables graph viewers
// import: one row per node with its intended label and display color, and
// one adjacency row per node.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/colorc/colorc/graph"
)

// Default file names used by the compile command.
const (
	EdgesFile  = "compiled_edges.csv"
	LabelsFile = "compiled_labels.csv"
)

// CSV writes the label table of g to labels and its adjacency table to
// edges.
//
// Label rows are "id,LABEL,#rrggbb" after an "Id,Label,Color" header. Edge
// rows are "id;n1;n2..." with the distinct neighbors of id in ascending
// order.
func CSV(g *graph.Graph, labels, edges io.Writer) error {
	if err := Labels(g, labels); err != nil {
		return fmt.Errorf("error writing labels: %w", err)
	}
	if err := Edges(g, edges); err != nil {
		return fmt.Errorf("error writing edges: %w", err)
	}
	return nil
}

func Labels(g *graph.Graph, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Id", "Label", "Color"}); err != nil {
		return err
	}
	for i := range g.Nodes {
		l := g.Nodes[i].Label
		if err := cw.Write([]string{strconv.Itoa(i), l.String(), l.Color()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Edges(g *graph.Graph, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	for i := range g.Nodes {
		ns := g.Neighbors(i)
		row := make([]string, 0, len(ns)+1)
		row = append(row, strconv.Itoa(i))
		for _, n := range ns {
			row = append(row, strconv.Itoa(n))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
