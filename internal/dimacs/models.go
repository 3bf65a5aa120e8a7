package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"
)

// ReadModels parses a file of one-line-per-model literal listings (the
// format produced by WriteModel, and used by this package's own tests as
// expected-output fixtures) into a slice of per-variable boolean models.
func ReadModels(filename string) ([][]bool, error) {
	r, err := openReader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// modelBuilder implements github.com/rhartert/dimacs's Builder interface,
// reinterpreting each "clause" line of the model file as a full variable
// assignment rather than a disjunction.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
