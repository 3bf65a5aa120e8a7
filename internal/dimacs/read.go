// Package dimacs reads, writes, and generates DIMACS CNF files: the plain
// text format for boolean satisfiability instances described in spec §5.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/jlang/yasat/internal/sat"
)

// Instance is a parsed CNF instance: a variable count and a clause set,
// ready to hand to sat.NewSolver.
type Instance struct {
	NumVars int
	Clauses []sat.Clause
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// ReadFile parses the DIMACS CNF file at filename into an Instance.
func ReadFile(filename string, gzipped bool) (*Instance, error) {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()
	return Read(r)
}

// Read parses a DIMACS CNF stream into an Instance.
func Read(r io.Reader) (*Instance, error) {
	b := &instanceBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return &Instance{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// instanceBuilder implements github.com/rhartert/dimacs's Builder interface,
// collecting the parsed problem into a plain Instance rather than feeding a
// live solver directly: unlike the teacher's parsers.builder, which wires
// straight into an incremental SATSolver (AddVariable/AddClause) so parsing
// and solving happen in lockstep, this core's Solver is single-shot and
// wants its whole clause set up front (see solver.go), so the builder
// simply accumulates.
type instanceBuilder struct {
	numVars int
	clauses []sat.Clause
}

func (b *instanceBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("problem type %q is not supported", problem)
	}
	b.numVars = nVars
	b.clauses = make([]sat.Clause, 0, nClauses)
	return nil
}

// Clause validates and converts one parsed clause. Spec §7 ("Malformed
// input") requires rejecting a literal whose magnitude exceeds numVars and
// a clause containing a duplicate or contradictory (v and -v) literal
// pair, neither of which the external dimacs.ReadBuilder enforces itself.
func (b *instanceBuilder) Clause(tmpClause []int) error {
	clause := make(sat.Clause, len(tmpClause))
	seen := make(map[int]bool, len(tmpClause))
	for i, l := range tmpClause {
		v := l
		if v < 0 {
			v = -v
		}
		if v < 1 || v > b.numVars {
			return fmt.Errorf("literal %d out of range for %d variables", l, b.numVars)
		}
		if seen[l] {
			return fmt.Errorf("duplicate literal %d in clause", l)
		}
		if seen[-l] {
			return fmt.Errorf("contradictory literals %d and %d in same clause", -l, l)
		}
		seen[l] = true

		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *instanceBuilder) Comment(_ string) error {
	return nil // ignore comments
}
