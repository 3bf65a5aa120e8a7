package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jlang/yasat/internal/sat"
)

// WriteResult renders a solver's verdict in the exact grammar spec §6
// requires: "RESULT:SAT", "RESULT:UNSAT", or "RESULT:UNKNOWN" on its own
// line, followed for SAT by an "ASSIGNMENT:" line of nvars whitespace
// separated "v=0"/"v=1" tokens in ascending v order (1..nvars). This is
// deliberately independent of Status.String(), which renders the
// human-oriented SATISFIABLE/UNSATISFIABLE/UNKNOWN words used in logging
// (solverlog) rather than the wire grammar scenarios 1-4 require.
func WriteResult(w io.Writer, status sat.Status, model []sat.LBool) error {
	bw := bufio.NewWriter(w)
	switch status {
	case sat.Satisfiable:
		fmt.Fprint(bw, "RESULT:SAT\n")
		fmt.Fprint(bw, "ASSIGNMENT:")
		for v, val := range model {
			bit := 0
			if val == sat.True {
				bit = 1
			}
			if v > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%d=%d", v+1, bit)
		}
		fmt.Fprint(bw, "\n")
	case sat.Unsatisfiable:
		fmt.Fprint(bw, "RESULT:UNSAT\n")
	default:
		fmt.Fprint(bw, "RESULT:UNKNOWN\n")
	}
	return bw.Flush()
}

// WriteModel appends one line of signed literals representing model to w,
// in the same per-variable layout ReadModels expects back.
func WriteModel(w io.Writer, model []sat.LBool) error {
	bw := bufio.NewWriter(w)
	for v, val := range model {
		lit := v + 1
		if val == sat.False {
			lit = -lit
		}
		if v > 0 {
			fmt.Fprint(bw, " ")
		}
		fmt.Fprintf(bw, "%d", lit)
	}
	fmt.Fprint(bw, " 0\n")
	return bw.Flush()
}

// WriteCNF renders an Instance back to DIMACS CNF text, used by
// cmd/yasat-gen to emit the random instances GenerateRandom3SAT produces.
func WriteCNF(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", inst.NumVars, len(inst.Clauses))
	for _, c := range inst.Clauses {
		for _, l := range c {
			n := l.VarID() + 1
			if !l.IsPositive() {
				n = -n
			}
			fmt.Fprintf(bw, "%d ", n)
		}
		fmt.Fprint(bw, "0\n")
	}
	return bw.Flush()
}
