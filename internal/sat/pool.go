package sat

import (
	"math/bits"
	"sync"
)

// Number of scratch-buffer pools.
const nPools = 4

// The minimum capacity for buffers in the last pool.
const lastCapa = 1 << nPools

// Pools of scratch literal buffers with different capacities, so that pool
// i holds buffers with a capacity between 2^(i+1) and 2^(i+2)-1 inclusive.
// The last pool holds buffers with a capacity of at least 2^(nPools).
//
// simplify (see simplify.go) runs on the hottest path in the solver: every
// decision and every propagated literal re-simplifies the whole formula.
// Adapted from the teacher's clause_allocpool.go, which pools whole Clause
// backing arrays across the life of a single mutable clause database; here
// clauses are copy-on-write values that outlive the call that builds them
// (they get captured into Formula snapshots across decision levels), so
// the pool instead holds short-lived scratch buffers used only while
// filtering a clause's literals, freed again once the filtered result is
// copied into its final right-sized Clause.
var pools = [nPools]sync.Pool{}

func init() {
	for i := 0; i < nPools; i++ {
		capa := 1 << (i + 1)
		pools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

// pid returns the ID of the pool responsible for a buffer of the given
// capacity.
func pid(capa int) int {
	if capa >= lastCapa {
		return nPools - 1
	}
	if capa <= 2 {
		return 0
	}
	// Smallest id whose pool capacity 2^(id+1) is at least capa.
	return bits.Len(uint(capa-1)) - 1
}

// getScratch returns an empty scratch buffer with at least the requested
// capacity.
func getScratch(capa int) *[]Literal {
	ref := pools[pid(capa)].Get().(*[]Literal)
	if capa < lastCapa {
		return ref
	}
	if cap(*ref) < capa {
		s := make([]Literal, 0, capa)
		ref = &s
	}
	return ref
}

// putScratch returns buf to its pool so it can be reused by a later call
// to getScratch.
func putScratch(buf *[]Literal) {
	*buf = (*buf)[:0]
	pools[pid(cap(*buf))].Put(buf)
}
