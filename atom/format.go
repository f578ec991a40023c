package atom

import (
	"fmt"
	"strconv"
	"strings"
)

func (t *Tree) String() string {
	buf := &strings.Builder{}
	t.write(buf, nil)
	return buf.String()
}

func (t *Tree) write(buf *strings.Builder, names map[ID]string) {
	switch t.Kind {
	case SeedKind:
		fmt.Fprintf(buf, "seed(%s)", t.Label)
	case VariableKind:
		if n, ok := names[t.ID]; ok && n != "" {
			buf.WriteString(n)
			return
		}
		buf.WriteString(t.ID.String())
	case ConstKind:
		buf.WriteString(strconv.FormatBool(t.Value))
	case NotKind, MarkerKind, OrKind:
		buf.WriteByte('(')
		buf.WriteString(map[Kind]string{NotKind: "not", MarkerKind: "keep", OrKind: "or"}[t.Kind])
		for _, a := range t.Args {
			buf.WriteByte(' ')
			a.write(buf, names)
		}
		buf.WriteByte(')')
	default:
		buf.WriteString("<unknown kind>")
	}
}

// String renders the program one statement per line, definitions in ID
// order followed by the actions.
func (r *Root) String() string {
	names := map[ID]string{}
	for id, def := range r.Definitions {
		if def.Name != "" {
			names[id] = def.Name
		}
	}
	buf := &strings.Builder{}
	for _, id := range r.IDs() {
		def := r.Definitions[id]
		buf.WriteString(id.String())
		if def.Name != "" {
			fmt.Fprintf(buf, " %q", def.Name)
		}
		buf.WriteString(" = ")
		def.Tree.write(buf, names)
		buf.WriteByte('\n')
	}
	for _, a := range r.Actions {
		switch a.Kind {
		case Restriction:
			buf.WriteString("force ")
			a.Tree.write(buf, names)
			fmt.Fprintf(buf, " => %t\n", a.Value)
		case Output:
			fmt.Fprintf(buf, "output %q", a.Format)
			for _, e := range a.Exprs {
				buf.WriteByte(' ')
				e.write(buf, names)
			}
			buf.WriteByte('\n')
		}
	}
	if r.Unsatisfiable {
		buf.WriteString("unsatisfiable\n")
	}
	return buf.String()
}
