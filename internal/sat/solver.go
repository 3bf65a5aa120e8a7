package sat

import (
	"context"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// Indeterminate is returned when Solve is stopped early (e.g. by a
	// context cancellation or a search timeout) before a verdict is
	// reached. Named distinctly from LBool's Unknown (lbool.go) since both
	// live in this package: a Status and a lifted-boolean value are
	// different kinds of "don't know yet".
	Indeterminate Status = iota
	Satisfiable
	Unsatisfiable
)

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Solver's search.
type Options struct {
	// PureLiteral enables the pure-literal elimination optimization (see
	// pureliteral.go). Disabled by default to match the distilled spec's
	// search procedure exactly. Enabling it forces extra literals, so it
	// can change which model Solve returns, and pure-literal elimination is
	// not known to be sound in combination with clause learning.
	PureLiteral bool
}

// DefaultOptions returns the Options the CLI uses absent any flags.
func DefaultOptions() Options {
	return Options{}
}

// Stats reports search diagnostics, mirroring the counters the teacher's
// Solver accumulates (decisions, conflicts) so solverlog can print the same
// kind of search-progress line the teacher's printSearchStats does.
type Stats struct {
	Decisions  int
	Conflicts  int
	Propagated int
}

// Solver runs the DPLL/CDCL search described in spec §4 over a fixed set of
// boolean variables and clauses.
//
// Unlike the teacher's Solver, which is built for incremental use (clauses
// and variables can be added between successive Solve calls, and internal
// state such as the watcher lists and VSIDS heap persists across them),
// this Solver is single-shot: it is constructed from one static formula and
// answers exactly one Solve call. Nothing here needs to survive past a
// single search, which is what permits the copy-on-write Formula/Assignment
// representation used throughout this package in place of the teacher's
// trail-and-undo one.
type Solver struct {
	numVars int
	initial Formula
	opts    Options

	Stats Stats
	Model []LBool
}

// NewSolver returns a Solver ready to search over numVars variables
// (numbered 0..numVars-1) and the given clauses.
func NewSolver(numVars int, clauses []Clause, opts Options) *Solver {
	f := make(Formula, len(clauses))
	copy(f, clauses)
	return &Solver{
		numVars: numVars,
		initial: f,
		opts:    opts,
	}
}

// frame is one level of the iterative search stack, standing in for a
// single recursive DPLL call (spec §4.6). triedPos/triedNeg record which
// polarities of branchVar have been attempted from this frame so far.
type frame struct {
	formula    Formula
	assignment Assignment
	branchVar  int
	hasBranch  bool
	triedPos   bool
	triedNeg   bool
}

// decisionLit returns the literal this frame last branched on.
func (fr frame) decisionLit() Literal {
	if fr.triedNeg {
		return NegativeLiteral(fr.branchVar)
	}
	return PositiveLiteral(fr.branchVar)
}

// Solve runs the search to completion, or until ctx is cancelled. It
// returns Unsatisfiable, Satisfiable (with Model populated), or
// Indeterminate if ctx was cancelled before a verdict was reached.
//
// This is an iterative transform of the spec's recursive search procedure
// (permitted by spec §9): since the learning scheme in analyze.go only ever
// produces unit clauses, the backjump level is always 0, so on conflict
// Solve cuts the stack back to its level-0 frame itself (without calling
// backjumpLevel), which is exactly a "pop the whole stack and add one
// forced fact" operation — a shape that maps far more naturally onto an
// explicit stack of frames than onto recursive calls threading a jump
// target back through return values.
func (s *Solver) Solve(ctx context.Context) Status {
	learned := newLearnedSet()

	f, a, ok := propagateAtLevel(s.initial, NewAssignment(), 0)
	if !ok {
		return Unsatisfiable
	}
	if s.opts.PureLiteral {
		f, a, ok = s.eliminatePureLiterals(f, a, 0)
		if !ok {
			return Unsatisfiable
		}
	}

	stack := []frame{{formula: f, assignment: a}}

	for {
		select {
		case <-ctx.Done():
			return Indeterminate
		default:
		}

		if len(stack) == 0 {
			return Unsatisfiable
		}
		top := &stack[len(stack)-1]

		if len(top.formula) == 0 {
			return s.finish(top.assignment)
		}

		if !top.hasBranch {
			v, found := selectBranchVar(top.formula)
			if !found {
				// A non-empty formula with nothing to branch on can only
				// hold an empty clause, which propagateAtLevel and simplify
				// never let through: an internal invariant violation.
				panic("sat: non-empty formula has no branching variable")
			}
			top.branchVar = v
			top.hasBranch = true
		}

		if !top.triedPos {
			top.triedPos = true
			s.Stats.Decisions++
			if nf, na, ok := s.tryBranch(top.formula, top.assignment, PositiveLiteral(top.branchVar), len(stack)); ok {
				stack = append(stack, frame{formula: nf, assignment: na})
				continue
			}
			s.Stats.Conflicts++
			continue
		}

		if !top.triedNeg {
			top.triedNeg = true
			s.Stats.Decisions++
			if nf, na, ok := s.tryBranch(top.formula, top.assignment, NegativeLiteral(top.branchVar), len(stack)); ok {
				stack = append(stack, frame{formula: nf, assignment: na})
				continue
			}
			s.Stats.Conflicts++
		}

		// Both polarities of this decision failed. The clause forbidding
		// the parent's decision is learned and, since it is always a unit
		// clause, the search restarts from level 0 with that literal
		// forced (spec §4.5/§4.6).
		if len(stack) == 1 {
			return Unsatisfiable
		}
		parentLit := stack[len(stack)-2].decisionLit()
		learnedClause := analyzeConflict(parentLit)
		stack = stack[:1]
		stack[0].hasBranch = false
		stack[0].triedPos = false
		stack[0].triedNeg = false

		if !learned.Add(learnedClause) {
			// Already known: nothing new was asserted, so the search has
			// nowhere left to go.
			return Unsatisfiable
		}

		nf, ok := simplify(stack[0].formula.WithClause(learnedClause), learnedClause[0])
		if !ok {
			return Unsatisfiable
		}
		na := stack[0].assignment.Clone()
		na.Add(learnedClause[0], 0)
		nf, na, ok = propagateAtLevel(nf, na, 0)
		if !ok {
			return Unsatisfiable
		}
		if s.opts.PureLiteral {
			nf, na, ok = s.eliminatePureLiterals(nf, na, 0)
			if !ok {
				return Unsatisfiable
			}
		}
		stack[0].formula = nf
		stack[0].assignment = na
	}
}

// eliminatePureLiterals repeatedly forces pure literals (see pureliteral.go)
// until none remain.
func (s *Solver) eliminatePureLiterals(f Formula, a Assignment, level int) (Formula, Assignment, bool) {
	for {
		lit, found := pureLiteral(f)
		if !found {
			return f, a, true
		}
		nf, ok := simplify(f, lit)
		if !ok {
			return nil, a, false
		}
		a = a.Clone()
		a.Add(lit, level)
		nf, a, ok = propagateAtLevel(nf, a, level)
		if !ok {
			return nil, a, false
		}
		f = nf
	}
}

// tryBranch assumes lit at the given decision level atop formula/assignment
// and propagates to a fixpoint. It returns ok=false on either an immediate
// simplify conflict or a conflict reached during propagation.
func (s *Solver) tryBranch(formula Formula, assignment Assignment, lit Literal, level int) (Formula, Assignment, bool) {
	nf, ok := simplify(formula, lit)
	if !ok {
		return nil, Assignment{}, false
	}
	na := assignment.Clone()
	na.Add(lit, level)
	before := na.Len()
	nf, na, ok = propagateAtLevel(nf, na, level)
	s.Stats.Propagated += na.Len() - before
	if !ok {
		return nil, Assignment{}, false
	}
	if s.opts.PureLiteral {
		nf, na, ok = s.eliminatePureLiterals(nf, na, level)
		if !ok {
			return nil, Assignment{}, false
		}
	}
	return nf, na, true
}

func (s *Solver) finish(a Assignment) Status {
	model := make([]LBool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		if val, ok := a.Value(v); ok {
			model[v] = val
		} else {
			model[v] = Unknown
		}
	}
	s.Model = model
	return Satisfiable
}

// VarValue reports the current value assigned to v in the final model, or
// Unknown if Solve has not yet produced one.
func (s *Solver) VarValue(v int) LBool {
	if v < 0 || v >= len(s.Model) {
		return Unknown
	}
	return s.Model[v]
}
