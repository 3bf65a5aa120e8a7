package sat

// simplify applies unit propagation of a single forced literal to a
// formula (spec §4.2, "Simplify"). Every clause containing lit is removed
// (it is now satisfied); every remaining clause has lit.Opposite() removed
// from it. If that removal empties a clause, the formula is unsatisfiable
// under the current assignment and ok is false.
//
// This mirrors the teacher's Solver.Propagate in purpose but not in shape:
// the teacher walks a watcher list and mutates clauses in place, tracking a
// single live clause database across the whole search. Here the formula is
// copy-on-write, since decision levels branch and need independent formula
// snapshots rather than an undo log (see solver.go).
func simplify(f Formula, lit Literal) (Formula, bool) {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if c.Contains(lit) {
			continue
		}
		if !c.Contains(lit.Opposite()) {
			out = append(out, c)
			continue
		}
		buf := getScratch(len(c) - 1)
		for _, l := range c {
			if l != lit.Opposite() {
				*buf = append(*buf, l)
			}
		}
		if len(*buf) == 0 {
			putScratch(buf)
			return nil, false
		}
		nc := make(Clause, len(*buf))
		copy(nc, *buf)
		putScratch(buf)
		out = append(out, nc)
	}
	return out, true
}

// simplifyAll applies simplify for each literal in lits in turn, stopping
// early if any step derives an empty clause.
func simplifyAll(f Formula, lits []Literal) (Formula, bool) {
	for _, lit := range lits {
		var ok bool
		f, ok = simplify(f, lit)
		if !ok {
			return nil, false
		}
	}
	return f, true
}
