package main

import (
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/colorc/colorc/rewrite"
)

func simp(cfg *SimpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Simp.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneArg("simp", args)
	if err != nil {
		return err
	}
	orig, res, _, err := run(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	r := res.Root
	if cfg.Final {
		r = r.Clone()
		rewrite.Finalize(r)
	}
	if !cfg.Diff {
		_, err := io.WriteString(cc.Out, r.String())
		return err
	}
	return writeDiff(cc.Out, orig.String(), r.String())
}

// writeDiff writes a line diff of from and to with "-", "+" and " "
// prefixes.
func writeDiff(w io.Writer, from, to string) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
