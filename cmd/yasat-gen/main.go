// Command yasat-gen writes a random 3-SAT instance in DIMACS CNF format to
// stdout, factoring the -gen generator mode of cmd/yasat out into its own
// small tool for scripted benchmark-set generation (e.g. piping a batch of
// seeds through a shell loop).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jlang/yasat/internal/dimacs"
)

func main() {
	vars := flag.Int("vars", 50, "number of variables")
	ratio := flag.Float64("ratio", 4.26, "clause-to-variable ratio")
	seed := flag.Int64("seed", 0, "PRNG seed")
	flag.Parse()

	inst := dimacs.GenerateRandom3SAT(*seed, *vars, *ratio)
	if err := dimacs.WriteCNF(os.Stdout, inst); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
