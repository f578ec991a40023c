package label

import "fmt"

// Label is a graph color. Null is the zero value and marks a label that is
// unknown or already unsatisfiable; it is never a legitimate final color.
type Label int

const (
	Null Label = iota
	True
	False
	Neutral
)

// Basis lists the three colors of the palette, in basis node order.
func Basis() []Label {
	return []Label{True, False, Neutral}
}

func (l Label) String() string {
	s, ok := map[Label]string{
		True:    "TRUE",
		False:   "FALSE",
		Neutral: "NEUTRAL",
		Null:    "NULL",
	}[l]
	if ok {
		return s
	}
	return "<unknown label>"
}

// Color returns the hex color used when exporting a node with this label.
func (l Label) Color() string {
	switch l {
	case True:
		return "#00FF00"
	case False:
		return "#FF0000"
	case Neutral:
		return "#0000FF"
	default:
		return "#555555"
	}
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Label) UnmarshalText(d []byte) error {
	ll, ok := map[string]Label{
		"TRUE":    True,
		"FALSE":   False,
		"NEUTRAL": Neutral,
		"NULL":    Null,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized label %q", d)
	}
	*l = ll
	return nil
}

func FromBool(b bool) Label {
	if b {
		return True
	}
	return False
}

// Bool reports the boolean value of l, ok is false unless l is True or False.
func (l Label) Bool() (v, ok bool) {
	switch l {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

func (l Label) IsBool() bool {
	return l == True || l == False
}

// Not negates a boolean label. Null stays Null.
// It panics on Neutral, which has no boolean meaning.
func (l Label) Not() Label {
	switch l {
	case True:
		return False
	case False:
		return True
	case Null:
		return Null
	}
	panic("label: cannot negate " + l.String())
}

// Or is boolean disjunction over True and False. If either side is Null
// the result is Null. It panics on Neutral.
func (l Label) Or(o Label) Label {
	if l == Null || o == Null {
		return Null
	}
	if !l.IsBool() || !o.IsBool() {
		panic(fmt.Sprintf("label: invalid or inputs %s, %s", l, o))
	}
	if l == True || o == True {
		return True
	}
	return False
}

// And is boolean conjunction, with the same Null and Neutral rules as Or.
func (l Label) And(o Label) Label {
	if l == Null || o == Null {
		return Null
	}
	if !l.IsBool() || !o.IsBool() {
		panic(fmt.Sprintf("label: invalid and inputs %s, %s", l, o))
	}
	if l == True && o == True {
		return True
	}
	return False
}
