package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/colorc/colorc/solve"
)

func solveMain(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneArg("solve", args)
	if err != nil {
		return err
	}
	_, res, _, err := run(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	_, colorable := solve.Colorable(res.Graph)
	sol, sat := solve.Satisfy(res.Root)
	if colorable != sat {
		return fmt.Errorf("graph colorable %t but program satisfiable %t", colorable, sat)
	}
	if !sat {
		fmt.Fprintln(cc.Out, "unsolvable")
		return cli.ExitCodeErr(1)
	}
	r := res.Root
	for _, id := range r.IDs() {
		v, ok := sol.Inputs[id]
		if !ok {
			continue
		}
		name := r.Definitions[id].Name
		if name == "" {
			name = id.String()
		}
		fmt.Fprintf(cc.Out, "%s = %t\n", name, v)
	}
	for _, o := range sol.Outputs {
		fmt.Fprintln(cc.Out, o)
	}
	return nil
}
