package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/colorc/colorc/export"
)

func compile(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneArg("compile", args)
	if err != nil {
		return err
	}
	_, res, sink, err := run(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	edgesPath, labelsPath := cfg.Edges, cfg.Labels
	if edgesPath == "" {
		edgesPath = export.EdgesFile
	}
	if labelsPath == "" {
		labelsPath = export.LabelsFile
	}
	edges, err := os.Create(edgesPath)
	if err != nil {
		return err
	}
	defer edges.Close()
	labels, err := os.Create(labelsPath)
	if err != nil {
		return err
	}
	defer labels.Close()
	if err := export.CSV(res.Graph, labels, edges); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%d nodes, %d edges\n", res.Graph.Len(), len(res.Graph.Edges()))
	if !sink.OK() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
