package sat

import (
	"context"
	"testing"

	"github.com/kr/pretty"
)

func lits(ls ...int) Clause {
	c := make(Clause, len(ls))
	for i, l := range ls {
		if l < 0 {
			c[i] = NegativeLiteral(-l - 1)
		} else {
			c[i] = PositiveLiteral(l - 1)
		}
	}
	return c
}

func solve(t *testing.T, numVars int, clauses []Clause, opts Options) (Status, []LBool) {
	t.Helper()
	s := NewSolver(numVars, clauses, opts)
	status := s.Solve(context.Background())
	return status, s.Model
}

// checkModel verifies that model satisfies every clause, failing the test
// with a pretty-printed dump of the offending clause if not (R2, "any
// returned model actually satisfies the formula").
func checkModel(t *testing.T, clauses []Clause, model []LBool) {
	t.Helper()
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			v := model[l.VarID()]
			if (l.IsPositive() && v == True) || (!l.IsPositive() && v == False) {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("model does not satisfy clause: %# v\nmodel: %# v", pretty.Formatter(c), pretty.Formatter(model))
		}
	}
}

func TestSolve_trivialSatisfiable(t *testing.T) {
	clauses := []Clause{lits(1, 2)}
	status, model := solve(t, 2, clauses, DefaultOptions())
	if status != Satisfiable {
		t.Fatalf("Solve() = %s, want SATISFIABLE", status)
	}
	checkModel(t, clauses, model)
}

func TestSolve_unitClauses(t *testing.T) {
	clauses := []Clause{lits(1), lits(-2)}
	status, model := solve(t, 2, clauses, DefaultOptions())
	if status != Satisfiable {
		t.Fatalf("Solve() = %s, want SATISFIABLE", status)
	}
	checkModel(t, clauses, model)
	if model[0] != True {
		t.Errorf("var 0 = %s, want true", model[0])
	}
	if model[1] != False {
		t.Errorf("var 1 = %s, want false", model[1])
	}
}

func TestSolve_emptyFormula(t *testing.T) {
	status, _ := solve(t, 0, nil, DefaultOptions())
	if status != Satisfiable {
		t.Fatalf("Solve() = %s, want SATISFIABLE for the empty formula", status)
	}
}

func TestSolve_singleEmptyClause(t *testing.T) {
	status, _ := solve(t, 1, []Clause{{}}, DefaultOptions())
	if status != Unsatisfiable {
		t.Fatalf("Solve() = %s, want UNSATISFIABLE for a formula containing an empty clause", status)
	}
}

func TestSolve_directContradiction(t *testing.T) {
	clauses := []Clause{lits(1), lits(-1)}
	status, _ := solve(t, 1, clauses, DefaultOptions())
	if status != Unsatisfiable {
		t.Fatalf("Solve() = %s, want UNSATISFIABLE", status)
	}
}

func TestSolve_requiresBranching(t *testing.T) {
	// (x1 or x2) and (!x1 or x2) and (x1 or !x2) and (!x1 or !x2) is
	// unsatisfiable: no assignment of two variables satisfies all four
	// clauses simultaneously.
	clauses := []Clause{
		lits(1, 2),
		lits(-1, 2),
		lits(1, -2),
		lits(-1, -2),
	}
	status, _ := solve(t, 2, clauses, DefaultOptions())
	if status != Unsatisfiable {
		t.Fatalf("Solve() = %s, want UNSATISFIABLE", status)
	}
}

func TestSolve_satisfiableRequiresBranching(t *testing.T) {
	clauses := []Clause{
		lits(1, 2, 3),
		lits(-1, 2, 3),
		lits(1, -2, 3),
		lits(1, 2, -3),
	}
	status, model := solve(t, 3, clauses, DefaultOptions())
	if status != Satisfiable {
		t.Fatalf("Solve() = %s, want SATISFIABLE", status)
	}
	checkModel(t, clauses, model)
}

// pigeonholePHP builds the classic pigeonhole-principle instance: n+1
// pigeons, n holes, each pigeon in exactly one hole (at-least-one clauses
// only), no hole holding two pigeons. It is unsatisfiable for any n >= 1
// and is a standard CDCL stress case despite its small size.
func pigeonholePHP(n int) (int, []Clause) {
	pigeons := n + 1
	holes := n
	v := func(p, h int) int { return p*holes + h + 1 }
	numVars := pigeons * holes

	var clauses []Clause
	for p := 0; p < pigeons; p++ {
		var c []int
		for h := 0; h < holes; h++ {
			c = append(c, v(p, h))
		}
		clauses = append(clauses, lits(c...))
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				clauses = append(clauses, lits(-v(p1, h), -v(p2, h)))
			}
		}
	}
	return numVars, clauses
}

func TestSolve_pigeonholeUnsatisfiable(t *testing.T) {
	numVars, clauses := pigeonholePHP(3)
	status, _ := solve(t, numVars, clauses, DefaultOptions())
	if status != Unsatisfiable {
		t.Fatalf("Solve() = %s, want UNSATISFIABLE for PHP(3,4->3)", status)
	}
}

func TestSolve_pureLiteralOptionMatchesDefault(t *testing.T) {
	clauses := []Clause{
		lits(1, 2, 3),
		lits(-1, 2, 3),
		lits(1, -2, 3),
		lits(1, 2, -3),
	}
	wantStatus, _ := solve(t, 3, clauses, DefaultOptions())

	opts := DefaultOptions()
	opts.PureLiteral = true
	gotStatus, model := solve(t, 3, clauses, opts)

	if gotStatus != wantStatus {
		t.Fatalf("Solve() with PureLiteral = %s, want %s (pure-literal elimination must not change the verdict)", gotStatus, wantStatus)
	}
	if gotStatus == Satisfiable {
		checkModel(t, clauses, model)
	}
}

func TestSolve_deterministic(t *testing.T) {
	numVars, clauses := pigeonholePHP(2)
	clauses = append(clauses, lits(1, 2, 3, 4)) // pad with a redundant clause
	first, _ := solve(t, numVars, clauses, DefaultOptions())
	for i := 0; i < 5; i++ {
		got, _ := solve(t, numVars, clauses, DefaultOptions())
		if got != first {
			t.Fatalf("Solve() is nondeterministic across repeated runs on the same input: run %d got %s, run 0 got %s", i, got, first)
		}
	}
}

func TestSolve_randomSmallInstances(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		clauses, numVars, model := bruteForceRandomInstance(seed)
		status, gotModel := solve(t, numVars, clauses, DefaultOptions())
		if status != Satisfiable {
			t.Fatalf("seed=%d: Solve() = %s, want SATISFIABLE (planted model: %# v)", seed, status, pretty.Formatter(model))
		}
		checkModel(t, clauses, gotModel)
	}
}

// bruteForceRandomInstance plants a satisfying assignment and derives a
// handful of clauses consistent with it, each guaranteed satisfied by at
// least one literal (see internal/dimacs/generate.go for the full-scale
// generator this is a miniature, allocation-light version of for tests).
func bruteForceRandomInstance(seed int64) ([]Clause, int, []bool) {
	const numVars = 6
	state := uint64(seed*2654435761 + 1)
	next := func() uint64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return state
	}

	model := make([]bool, numVars)
	for i := range model {
		model[i] = next()%2 == 0
	}

	clauses := make([]Clause, 0, numVars)
	for i := 0; i < numVars; i++ {
		v1 := int(next() % numVars)
		v2 := int(next() % numVars)
		l1 := v1 + 1
		if !model[v1] {
			l1 = -l1
		}
		l2 := v2 + 1
		if next()%2 == 0 {
			l2 = -l2
		}
		clauses = append(clauses, lits(l1, l2))
	}
	return clauses, numVars, model
}
