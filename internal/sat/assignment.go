package sat

// Assignment tracks the literals currently forced true and the decision
// level at which each was first forced (spec §3, "Assignment model" /
// "Decision-level map"). It plays the role the teacher's solver.go fills
// with parallel `assigns`/`level`/`trail` slices indexed by literal; this
// core uses maps instead since, unlike the teacher's incremental solver,
// variables are not declared up front through a sequence of AddVariable
// calls that would let us size dense arrays ahead of time.
type Assignment struct {
	values map[int]LBool
	levels map[int]int
	trail  []Literal
}

// NewAssignment returns an empty assignment.
func NewAssignment() Assignment {
	return Assignment{
		values: map[int]LBool{},
		levels: map[int]int{},
	}
}

// Clone returns an independent copy of a, so that extending the copy never
// mutates a caller's snapshot of an earlier decision level.
func (a Assignment) Clone() Assignment {
	values := make(map[int]LBool, len(a.values))
	for k, v := range a.values {
		values[k] = v
	}
	levels := make(map[int]int, len(a.levels))
	for k, v := range a.levels {
		levels[k] = v
	}
	return Assignment{
		values: values,
		levels: levels,
		trail:  append([]Literal(nil), a.trail...),
	}
}

// Add forces l to true at the given decision level. Invariant P1 ("for
// every literal l in A, -l is not in A") is maintained by construction: the
// simplifier never leaves a clause from which both l and -l could be
// derived as units at the same point in the search (see simplify.go).
func (a *Assignment) Add(l Literal, level int) {
	a.values[l.VarID()] = Lift(l.IsPositive())
	a.levels[l.VarID()] = level
	a.trail = append(a.trail, l)
}

// Contains reports whether literal l is currently forced true.
func (a Assignment) Contains(l Literal) bool {
	v, ok := a.values[l.VarID()]
	return ok && v == Lift(l.IsPositive())
}

// Value returns the forced value of variable v, if any.
func (a Assignment) Value(v int) (LBool, bool) {
	val, ok := a.values[v]
	return val, ok
}

// Level returns the decision level at which variable v was first forced.
func (a Assignment) Level(v int) (int, bool) {
	lv, ok := a.levels[v]
	return lv, ok
}

// Len returns the number of forced literals (the size of the trail).
func (a Assignment) Len() int {
	return len(a.trail)
}

// Literals returns the trail of forced literals in the order they were
// added.
func (a Assignment) Literals() []Literal {
	return a.trail
}
