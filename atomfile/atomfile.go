// Package atomfile reads a program written directly in terms of the atom IR
// from YAML.
//
//	seeds:
//	  x: false
//	  y: unknown
//	define:
//	  a: {or: [x, y]}
//	  b: {and: [a, {not: y}]}
//	force:
//	  - {expr: b, value: true}
//	output:
//	  - {format: ["y is ", ""], exprs: [y]}
//
// A seed value is true, false or unknown. An expression is a name, true,
// false, or a single key mapping {not: e}, {or: [e...]}, {and: [e...]} or
// {implies: [a, b]}. Every name must be a seed or an earlier definition, so
// definitions can never refer to themselves.
package atomfile

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/colorc/colorc/atom"
	"github.com/colorc/colorc/diag"
	"github.com/colorc/colorc/label"
)

type file struct {
	Seeds  yaml.MapSlice `yaml:"seeds"`
	Define yaml.MapSlice `yaml:"define"`
	Force  []force       `yaml:"force"`
	Output []output      `yaml:"output"`
}

type force struct {
	Expr  any  `yaml:"expr"`
	Value bool `yaml:"value"`
}

type output struct {
	Format []string `yaml:"format"`
	Exprs  []any    `yaml:"exprs"`
}

// DecodeFile reads and decodes the atom file at path.
func DecodeFile(path string) (*atom.Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Decode builds a root from the YAML in data. name is used for spans.
func Decode(name string, data []byte) (*atom.Root, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	d := &decoder{
		name:  name,
		root:  atom.NewRoot(),
		names: map[string]atom.ID{},
	}
	if af, err := parser.ParseBytes(data, 0); err == nil {
		d.ast = af
	}
	for _, item := range f.Seeds {
		key, err := d.key(item.Key, "seeds")
		if err != nil {
			return nil, err
		}
		l, err := seedLabel(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: seed %s: %w", ErrDecode, key, err)
		}
		d.names[key] = d.root.DefineNamed(key, atom.Seed(l))
	}
	for _, item := range f.Define {
		key, err := d.key(item.Key, "define")
		if err != nil {
			return nil, err
		}
		t, err := d.expr(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: definition %s: %w", ErrDecode, key, err)
		}
		d.names[key] = d.root.DefineNamed(key, t)
	}
	for i, fc := range f.Force {
		if fc.Expr == nil {
			return nil, fmt.Errorf("%w: force[%d]: missing expr", ErrDecode, i)
		}
		t, err := d.expr(fc.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: force[%d]: %w", ErrDecode, i, err)
		}
		d.root.Actions = append(d.root.Actions, atom.Action{
			Kind:  atom.Restriction,
			Tree:  t,
			Value: fc.Value,
			Span:  d.span(fmt.Sprintf("$.force[%d]", i)),
		})
	}
	for i, o := range f.Output {
		exprs := make([]*atom.Tree, len(o.Exprs))
		for j, e := range o.Exprs {
			t, err := d.expr(e)
			if err != nil {
				return nil, fmt.Errorf("%w: output[%d]: %w", ErrDecode, i, err)
			}
			exprs[j] = t
		}
		d.root.Actions = append(d.root.Actions, atom.Action{
			Kind:   atom.Output,
			Format: o.Format,
			Exprs:  exprs,
			Span:   d.span(fmt.Sprintf("$.output[%d]", i)),
		})
	}
	return d.root, nil
}

type decoder struct {
	name  string
	root  *atom.Root
	names map[string]atom.ID
	ast   *ast.File
}

func (d *decoder) key(k any, section string) (string, error) {
	s, ok := k.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: key %v is not a name", ErrDecode, section, k)
	}
	if _, dup := d.names[s]; dup {
		return "", fmt.Errorf("%w: %s: %s defined twice", ErrDecode, section, s)
	}
	return s, nil
}

// span locates the node at path, falling back to just the file name.
func (d *decoder) span(path string) *diag.Span {
	sp := &diag.Span{File: d.name}
	if d.ast == nil {
		return sp
	}
	p, err := yaml.PathString(path)
	if err != nil {
		return sp
	}
	n, err := p.FilterFile(d.ast)
	if err != nil || n == nil {
		return sp
	}
	if tok := n.GetToken(); tok != nil && tok.Position != nil {
		sp.Line = tok.Position.Line
		sp.Col = tok.Position.Column
	}
	return sp
}

func seedLabel(v any) (label.Label, error) {
	switch x := v.(type) {
	case bool:
		return label.FromBool(x), nil
	case nil:
		return label.Null, nil
	case string:
		if x == "unknown" {
			return label.Null, nil
		}
	}
	return label.Null, fmt.Errorf("want true, false or unknown, got %v", v)
}

func (d *decoder) expr(v any) (*atom.Tree, error) {
	switch x := v.(type) {
	case bool:
		return atom.Const(x), nil
	case string:
		id, ok := d.names[x]
		if !ok {
			return nil, fmt.Errorf("unknown name %q", x)
		}
		return atom.Var(id), nil
	case yaml.MapSlice:
		if len(x) != 1 {
			return nil, fmt.Errorf("operator mapping must have exactly one key, got %d", len(x))
		}
		op, ok := x[0].Key.(string)
		if !ok {
			return nil, fmt.Errorf("operator %v is not a name", x[0].Key)
		}
		return d.op(op, x[0].Value)
	case map[string]any:
		if len(x) != 1 {
			return nil, fmt.Errorf("operator mapping must have exactly one key, got %d", len(x))
		}
		for op, arg := range x {
			return d.op(op, arg)
		}
	}
	return nil, fmt.Errorf("invalid expression %v", v)
}

func (d *decoder) op(op string, arg any) (*atom.Tree, error) {
	if op == "not" {
		t, err := d.expr(arg)
		if err != nil {
			return nil, err
		}
		return atom.Not(t), nil
	}
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("%s takes a list, got %v", op, arg)
	}
	ts := make([]*atom.Tree, len(list))
	for i, e := range list {
		t, err := d.expr(e)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	switch op {
	case "or":
		return atom.Or(ts...), nil
	case "and":
		return atom.And(ts...), nil
	case "implies":
		if len(ts) != 2 {
			return nil, fmt.Errorf("implies takes 2 operands, got %d", len(ts))
		}
		return atom.Or(atom.Not(ts[0]), ts[1]), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}
