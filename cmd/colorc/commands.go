package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "colorc").
		WithSynopsis("colorc [opts] command [opts]").
		WithDescription("colorc compiles boolean programs to graphs whose 3-colorings are their solutions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return colorcMain(cfg, cc, args)
		}).
		WithSubs(
			CompileCommand(cfg),
			SimpCommand(cfg),
			SolveCommand(cfg))
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c").
		WithSynopsis("compile [-edges path] [-labels path] file").
		WithDescription("compile an atom file to csv edge and label tables").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compile(cfg, cc, args)
		})
}

func SimpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Simp, "simp").
		WithAliases("s").
		WithSynopsis("simp [-diff] [-final] file").
		WithDescription("print an atom file after rewriting").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return simp(cfg, cc, args)
		})
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Solve, "solve").
		WithSynopsis("solve file").
		WithDescription("compile an atom file, color the graph and print the outputs of a solution").
		WithRun(func(cc *cli.Context, args []string) error {
			return solveMain(cfg, cc, args)
		})
}
