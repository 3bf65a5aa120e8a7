package sat

// pureLiteral returns a literal that occurs in f but whose opposite does
// not, if one exists. Forcing such a literal true can only ever help
// satisfy the formula, never hurt it, so it can be assigned outright
// without branching (a classic DPLL optimization, supplementing the
// distilled spec's pure DPLL/CDCL loop; see original_source's
// sat_solver_h_MOM.py, which applies the same rule before falling back to
// MOM branching).
//
// This is opt-in (see Options.PureLiteral) and off by default: forcing pure
// literals can change which model Solve returns, and the step is not known
// to be sound in combination with clause learning.
func pureLiteral(f Formula) (Literal, bool) {
	posSeen := map[int]bool{}
	negSeen := map[int]bool{}
	var order []int
	for _, c := range f {
		for _, l := range c {
			v := l.VarID()
			if !posSeen[v] && !negSeen[v] {
				order = append(order, v)
			}
			if l.IsPositive() {
				posSeen[v] = true
			} else {
				negSeen[v] = true
			}
		}
	}
	for _, v := range order {
		switch {
		case posSeen[v] && !negSeen[v]:
			return PositiveLiteral(v), true
		case negSeen[v] && !posSeen[v]:
			return NegativeLiteral(v), true
		}
	}
	return 0, false
}
