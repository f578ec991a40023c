package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/atomfile"
	"github.com/colorc/colorc/diag"
	"github.com/colorc/colorc/pipeline"
)

func colorcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// load decodes the atom file at path, or standard input for "-".
func load(cc *cli.Context, path string) (*atom.Root, error) {
	if path != "-" {
		return atomfile.DecodeFile(path)
	}
	data, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, err
	}
	return atomfile.Decode("<stdin>", data)
}

// run loads and compiles path, rendering diagnostics to stderr.
func run(cfg *MainConfig, cc *cli.Context, path string) (*atom.Root, *pipeline.Result, *diag.Sink, error) {
	r, err := load(cc, path)
	if err != nil {
		return nil, nil, nil, err
	}
	orig := r.Clone()
	sink := diag.NewSink()
	res, err := pipeline.Run(r, cfg.settings(), sink)
	if rerr := diag.Render(os.Stderr, sink.Diagnostics(), cfg.colored(os.Stderr)); rerr != nil {
		return nil, nil, nil, rerr
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error compiling %s: %w", path, err)
	}
	theLog.Debug("compiled", "file", path, "nodes", res.Graph.Len(), "diagnostics", len(sink.Diagnostics()))
	return orig, res, sink, nil
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s requires exactly one file argument", cli.ErrUsage, cmd)
	}
	return args[0], nil
}
