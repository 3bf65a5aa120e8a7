package sat

// analyzeConflict builds the learned clause for a conflict reached while
// forcing decision literal and its consequences (spec §4.5, "Conflict
// analysis"). Unlike the teacher's full 1-UIP resolution scheme in
// Solver.analyze, which walks the implication graph backward resolving
// reason clauses until a single literal from the current level remains,
// this core uses the simplified "last decision" scheme the spec calls for:
// the learned clause is just the negation of the most recent decision
// literal, asserting that this branch as a whole cannot hold.
//
// This keeps every learned clause a unit clause, which is what makes
// backjumpLevel's always-jump-to-zero behavior (below) correct: a unit
// clause has no earlier decision level to jump back to other than the
// top.
func analyzeConflict(decisionLit Literal) Clause {
	return Clause{decisionLit.Opposite()}
}

// backjumpLevel returns the decision level the search should resume at
// after learning clause: the second-highest decision level among its
// literals (spec §4.5). Since analyzeConflict only ever produces unit
// clauses here, the asserting level is always 0 (spec §4.5: "a clause
// consisting of a single literal forces a full restart to decision level
// 0, since there is no other decision level for it to contradict"), so
// this general branch is dead in the current search, reached by neither
// Solve nor any test; it is kept general, and correct, as the hook a
// future 1-UIP upgrade (spec §4.6's "an implementer may choose to upgrade
// to 1-UIP") would call instead of always restarting at 0.
func backjumpLevel(clause Clause, levelOf map[int]int) int {
	if len(clause) == 1 {
		return 0
	}
	first, second := -1, -1
	for _, l := range clause {
		lv, ok := levelOf[l.VarID()]
		if !ok {
			continue
		}
		if lv > first {
			second = first
			first = lv
		} else if lv > second {
			second = lv
		}
	}
	if second < 0 {
		return 0
	}
	return second
}

// learnedSet deduplicates learned clauses across the search by their
// canonical literal sequence, guaranteeing the search terminates: the same
// unit clause cannot be (re)learned and re-applied forever (spec §4.5,
// "Termination").
type learnedSet struct {
	seen map[string]bool
}

func newLearnedSet() *learnedSet {
	return &learnedSet{seen: map[string]bool{}}
}

// Add records clause as learned and reports whether it was new.
func (s *learnedSet) Add(c Clause) bool {
	k := c.key()
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	return true
}
