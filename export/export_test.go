package export

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/graph"
	"github.com/colorc/colorc/label"
)

func TestCSV(t *testing.T) {
	r := atom.NewRoot()
	x := r.DefineNamed("x", atom.Seed(label.Null))
	r.Restrict(atom.Var(x), true)
	g := graph.Encode(r, nil)

	labels, edges := &bytes.Buffer{}, &bytes.Buffer{}
	if err := CSV(g, labels, edges); err != nil {
		t.Fatal(err)
	}
	wantLabels := "Id,Label,Color\n" +
		"0,TRUE,#00FF00\n" +
		"1,FALSE,#FF0000\n" +
		"2,NEUTRAL,#0000FF\n" +
		"3,NULL,#555555\n"
	if diff := cmp.Diff(wantLabels, labels.String()); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	wantEdges := "0;1;2\n" +
		"1;0;2;3\n" +
		"2;0;1;3\n" +
		"3;1;2\n"
	if diff := cmp.Diff(wantEdges, edges.String()); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
}

func TestEdgesDeduplicated(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{Edges: []int{2, 1, 2}},
			{Edges: []int{0}},
			{Edges: []int{0, 0}},
			{},
		},
	}
	buf := &bytes.Buffer{}
	if err := Edges(g, buf); err != nil {
		t.Fatal(err)
	}
	want := "0;1;2\n1;0\n2;0\n3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
