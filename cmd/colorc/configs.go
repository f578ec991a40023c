package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/colorc/colorc/pipeline"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='color diagnostics'"`
	Heavy     bool `cli:"name=heavy desc='inline everything, then outline common subexpressions'"`
	MaxRounds int  `cli:"name=rounds desc='bound on rounds of each rewrite fixpoint'"`
	Verbose   bool `cli:"name=v desc='log rewrite progress'"`

	Main *cli.Command
}

func (cfg *MainConfig) settings() pipeline.Settings {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return pipeline.Settings{
		Heavy:     cfg.Heavy,
		MaxRounds: cfg.MaxRounds,
		Logger:    theLog,
	}
}

// colored reports whether diagnostics written to w should be colored.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CompileConfig struct {
	*MainConfig
	Edges  string `cli:"name=edges desc='edge table output path'"`
	Labels string `cli:"name=labels desc='label table output path'"`

	Compile *cli.Command
}

type SimpConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='show a line diff against the input program'"`
	Final bool `cli:"name=final desc='show the program as handed to the encoder'"`

	Simp *cli.Command
}

type SolveConfig struct {
	*MainConfig

	Solve *cli.Command
}
