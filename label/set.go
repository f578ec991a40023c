package label

import "strings"

// Set is a set of basis labels, used as a node's color whitelist.
type Set uint8

const (
	None Set = 0
	All      = Set(1<<True | 1<<False | 1<<Neutral)
	// Boolean admits True and False.
	Boolean = Set(1<<True | 1<<False)
)

func Of(ls ...Label) Set {
	var s Set
	for _, l := range ls {
		s = s.With(l)
	}
	return s
}

func (s Set) With(l Label) Set {
	if l == Null {
		return s
	}
	return s | 1<<l
}

func (s Set) Has(l Label) bool {
	if l == Null {
		return false
	}
	return s&(1<<l) != 0
}

func (s Set) Intersect(o Set) Set {
	return s & o
}

func (s Set) Empty() bool {
	return s&All == 0
}

func (s Set) Len() int {
	n := 0
	for _, l := range Basis() {
		if s.Has(l) {
			n++
		}
	}
	return n
}

// Labels returns the members of s in basis order.
func (s Set) Labels() []Label {
	var res []Label
	for _, l := range Basis() {
		if s.Has(l) {
			res = append(res, l)
		}
	}
	return res
}

// Single returns the only member of s.
func (s Set) Single() (Label, bool) {
	if s.Len() != 1 {
		return Null, false
	}
	return s.Labels()[0], true
}

func (s Set) String() string {
	parts := []string{}
	for _, l := range s.Labels() {
		parts = append(parts, l.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
