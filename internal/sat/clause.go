package sat

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is an ordered sequence of literals representing their disjunction.
// Unlike the teacher's two-watched-literal Clause, this is a plain value
// type: clauses are never mutated in place, they are replaced wholesale by
// the simplifier (see simplify.go) so that a clause set can be cheaply
// snapshotted per decision level.
type Clause []Literal

// Contains returns true if l appears in c.
func (c Clause) Contains(l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

// IsUnit returns true if c has exactly one literal.
func (c Clause) IsUnit() bool {
	return len(c) == 1
}

// Canonical returns a sorted copy of c's literals, used as a deduplication
// key for the learned-clause set (spec: "canonicalize each learned clause by
// sorting its literals").
func (c Clause) Canonical() []Literal {
	cp := append([]Literal(nil), c...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	return cp
}

// key returns a comparable string built from the canonical literal sequence,
// suitable for use in a map.
func (c Clause) key() string {
	canon := c.Canonical()
	var sb strings.Builder
	for i, l := range canon {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

func (c Clause) String() string {
	if len(c) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c[0].String())
	for _, l := range c[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
