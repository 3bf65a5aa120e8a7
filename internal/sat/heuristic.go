package sat

import (
	"math"

	"github.com/rhartert/yagh"
)

// minClauseSize returns the length of the shortest clause in f, used as the
// "minimum size" in MOM (Maximum Occurrence in clauses of Minimum size).
func minClauseSize(f Formula) int {
	min := -1
	for _, c := range f {
		if min == -1 || len(c) < min {
			min = len(c)
		}
	}
	return min
}

// selectBranchVar picks the next branching variable using the MOM heuristic
// (spec §4.3, "Branching heuristic"): among the clauses of minimum size m,
// count each candidate variable's positive occurrences p and negative
// occurrences n separately, then score it as
//
//	score(v) = (p + n) * 2^m + p * n
//
// and pick the variable with the highest score. The (p+n)*2^m term favors
// variables occurring often in short (most constraining) clauses; the p*n
// term favors variables whose polarities are balanced, since either branch
// then propagates about as much as the other. Ties are broken by lowest
// variable ID, since the spec requires a total, reproducible order.
//
// The teacher's NextDecision pulls from a VarOrder's persistent VSIDS heap,
// maintained incrementally across the whole search and bumped on conflict.
// MOM instead recomputes its score from scratch against the current
// quiescent formula for every single decision, so this builds a fresh
// yagh.IntMap[float64] per call rather than keeping one alive in Solver:
// there is no activity state to carry from one decision to the next.
func selectBranchVar(f Formula) (int, bool) {
	min := minClauseSize(f)
	if min == -1 {
		return 0, false
	}

	pos := map[int]int{}
	neg := map[int]int{}
	seen := map[int]bool{}
	var order []int
	for _, c := range f {
		if len(c) != min {
			continue
		}
		for _, l := range c {
			v := l.VarID()
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
			if l.IsPositive() {
				pos[v]++
			} else {
				neg[v]++
			}
		}
	}
	if len(order) == 0 {
		return 0, false
	}

	weight := math.Pow(2, float64(min))
	maxV := 0
	for _, v := range order {
		if v > maxV {
			maxV = v
		}
	}
	heap := yagh.New[float64](0)
	heap.GrowBy(len(order))
	for i, v := range order {
		p := float64(pos[v])
		n := float64(neg[v])
		score := (p+n)*weight + p*n
		// Negate so that Pop (a min-heap) returns the highest score first;
		// break ties on variable ID by folding it into the fractional part
		// (v/(maxV+1) is below 1, and scores are whole numbers).
		heap.Put(i, -score+float64(v)/float64(maxV+1))
	}

	top, ok := heap.Pop()
	if !ok {
		return 0, false
	}
	return order[top.Elem], true
}
