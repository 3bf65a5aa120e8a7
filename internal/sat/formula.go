package sat

// Formula is an ordered sequence of clauses (the "Formula store" of the
// design, §2). Insertion order is preserved across every derived/simplified
// formula so that heuristic scoring and branching choices stay reproducible
// (spec: "internal iteration order over clauses MUST follow the insertion
// order of the current clause set").
type Formula []Clause

// Clone returns an independent copy of f. The original clause set is
// write-once; every derived value from here on is a fresh copy so that a
// caller holding an older snapshot (e.g. a parent decision level) never
// observes a mutation.
func (f Formula) Clone() Formula {
	cp := make(Formula, len(f))
	copy(cp, f)
	return cp
}

// WithClause returns a new formula with c appended, used to add a freshly
// learned clause to a decision level's snapshot without disturbing the
// original slice's backing array.
func (f Formula) WithClause(c Clause) Formula {
	out := make(Formula, len(f), len(f)+1)
	copy(out, f)
	return append(out, c)
}

// firstUnit returns the first unit clause in f, scanning in insertion order.
func (f Formula) firstUnit() (Literal, bool) {
	for _, c := range f {
		if c.IsUnit() {
			return c[0], true
		}
	}
	return 0, false
}

// hasEmptyClause reports whether f contains a clause with no literals. An
// empty clause is never satisfied by any assignment, so its presence is an
// unconditional conflict (spec §3: "a clause of length 0 is a conflict"),
// independent of unit propagation: a clause that started out empty (rather
// than being emptied by simplify, which already reports its own conflicts)
// contains neither lit nor lit.Opposite() for any lit, so simplify passes
// it through unchanged forever instead of ever striking it.
func (f Formula) hasEmptyClause() bool {
	for _, c := range f {
		if len(c) == 0 {
			return true
		}
	}
	return false
}
