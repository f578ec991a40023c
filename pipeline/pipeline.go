// Package pipeline drives a program through the rewrite passes to a fixed
// point and lowers the result to a graph.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/diag"
	"github.com/colorc/colorc/graph"
	"github.com/colorc/colorc/rewrite"
)

const DefaultMaxRounds = 10000

type Settings struct {
	// Heavy enables full inlining followed by common subexpression
	// outlining after the light simplification rounds.
	Heavy bool
	// MaxRounds bounds every fixpoint loop. Zero means DefaultMaxRounds.
	MaxRounds int
	// Logger receives pass progress at debug level. Nil discards it.
	Logger *slog.Logger
}

type Result struct {
	// Root is the rewritten program before finalization. Output actions
	// are kept and rewritten along with everything else.
	Root  *atom.Root
	Graph *graph.Graph
}

// Run rewrites r in place and encodes its restrictions. Problems with the
// program are recorded in sink and still produce a graph; errors returned
// are either ErrNoFixpoint or ErrInternal.
func Run(r *atom.Root, s Settings, sink *diag.Sink) (res *Result, err error) {
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		var ie *atom.InvariantError
		if e, ok := x.(error); ok && errors.As(e, &ie) {
			res = nil
			err = fmt.Errorf("%w: %w", ErrInternal, ie)
			return
		}
		panic(x)
	}()
	p := &pipe{root: r, sink: sink, max: s.MaxRounds, log: s.Logger}
	if p.max <= 0 {
		p.max = DefaultMaxRounds
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	if err := p.light(); err != nil {
		return nil, err
	}
	if s.Heavy {
		rewrite.InlineAll(r)
		p.log.Debug("inlined", "definitions", len(r.Definitions))
		if err := p.light(); err != nil {
			return nil, err
		}
		n := rewrite.OutlineCommon(r)
		p.log.Debug("outlined", "subexpressions", n)
		if err := p.light(); err != nil {
			return nil, err
		}
	}
	g := graph.Encode(encodable(r), sink)
	p.log.Debug("encoded", "nodes", g.Len(), "edges", len(g.Edges()))
	return &Result{Root: r, Graph: g}, nil
}

// encodable returns a finalized copy of r without its output actions.
func encodable(r *atom.Root) *atom.Root {
	c := r.Clone()
	acts := c.Actions[:0]
	for _, a := range c.Actions {
		if a.Kind == atom.Restriction {
			acts = append(acts, a)
		}
	}
	c.Actions = acts
	rewrite.Finalize(c)
	return c
}

type pipe struct {
	root *atom.Root
	sink *diag.Sink
	max  int
	log  *slog.Logger
}

// light runs link removal, then force propagation and simplification
// interleaved with link removal, until nothing changes.
func (p *pipe) light() error {
	if _, err := p.links(); err != nil {
		return err
	}
	return p.fixpoint("simplify", func() (bool, error) {
		changed := rewrite.SimplifyRoot(p.root, p.sink)
		linked, err := p.links()
		return changed || linked, err
	})
}

// links removes links until none are left, reporting whether any were.
func (p *pipe) links() (bool, error) {
	removed := false
	err := p.fixpoint("links", func() (bool, error) {
		ok := rewrite.RemoveLinks(p.root)
		removed = removed || ok
		return ok, nil
	})
	return removed, err
}

func (p *pipe) fixpoint(name string, step func() (bool, error)) error {
	for i := 0; i < p.max; i++ {
		changed, err := step()
		if err != nil {
			return err
		}
		if !changed {
			p.log.Debug("fixpoint", "pass", name, "rounds", i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %s after %d rounds", ErrNoFixpoint, name, p.max)
}
