package sat

// propagateAtLevel repeatedly simplifies f against its own unit clauses
// until no unit clause remains (a quiescent formula, spec §4.3, "Unit
// propagation"). Every literal forced this way is recorded in a at the
// given decision level. It returns the quiescent formula, the extended
// assignment, and false if a conflict (an empty clause) was derived.
//
// The teacher's Propagate walks propQueue, a FIFO of literals awaiting
// watcher notification, so that each literal is processed exactly once
// against a live two-watched-literal index. There is no watcher index
// here, so the loop below instead rescans the formula for a fresh unit
// clause after every step; firstUnit's insertion-order scan keeps this
// reproducible across equivalent formulas (see formula.go).
func propagateAtLevel(f Formula, a Assignment, level int) (Formula, Assignment, bool) {
	a = a.Clone()
	if f.hasEmptyClause() {
		return nil, a, false
	}
	for {
		lit, ok := f.firstUnit()
		if !ok {
			return f, a, true
		}
		a.Add(lit, level)
		var fine bool
		f, fine = simplify(f, lit)
		if !fine {
			return nil, a, false
		}
	}
}
