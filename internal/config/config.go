// Package config parses the yasat CLI's flags into a Config, generalizing
// the teacher's main.go parseConfig/config pair (flag.Bool vars plus a
// flag.Parse-and-validate function) to the flags the expanded CLI needs:
// profiling, a search timeout, verbosity, and the random-instance generator
// mode.
package config

import (
	"flag"
	"fmt"
	"time"
)

// Config holds the parsed command-line configuration for cmd/yasat.
type Config struct {
	InstanceFile string
	Gzipped      bool

	Timeout time.Duration
	Verbose bool

	PureLiteral bool

	CPUProfile string
	MemProfile string

	// Generate mode (spec §6 "-gen" extension): when true, InstanceFile is
	// ignored and a random instance is generated and solved instead.
	Generate bool
	GenVars  int
	GenRatio float64
	GenSeed  int64
}

// Parse parses args (normally os.Args[1:]) into a Config, using a FlagSet
// of its own rather than the flag package's default CommandLine. It returns an error instead of exiting so that callers
// (and tests) control process lifetime explicitly, unlike the teacher's
// parseConfig, which leaves flag.Parse's built-in -h/usage exit behavior
// untouched but otherwise returns its own errors the same way.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("yasat", flag.ContinueOnError)

	timeout := fs.Duration("timeout", 0, "search time budget; 0 means no limit")
	verbose := fs.Bool("v", false, "print search diagnostics to stderr")
	pureLiteral := fs.Bool("pure-literal", false, "enable pure-literal elimination before branching")
	cpuProfile := fs.String("cpuprofile", "", "write a pprof CPU profile to this file")
	memProfile := fs.String("memprofile", "", "write a pprof heap profile to this file")
	gzipped := fs.Bool("gzip", false, "the instance file is gzip-compressed")

	gen := fs.Bool("gen", false, "generate a random 3-SAT instance instead of reading one")
	genVars := fs.Int("vars", 50, "number of variables for -gen")
	genRatio := fs.Float64("ratio", 4.26, "clause-to-variable ratio for -gen")
	genSeed := fs.Int64("seed", 0, "PRNG seed for -gen")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Timeout:     *timeout,
		Verbose:     *verbose,
		PureLiteral: *pureLiteral,
		CPUProfile:  *cpuProfile,
		MemProfile:  *memProfile,
		Gzipped:     *gzipped,
		Generate:    *gen,
		GenVars:     *genVars,
		GenRatio:    *genRatio,
		GenSeed:     *genSeed,
	}

	if !cfg.Generate {
		if fs.NArg() == 0 || fs.Arg(0) == "" {
			return nil, fmt.Errorf("missing instance file")
		}
		cfg.InstanceFile = fs.Arg(0)
	}

	return cfg, nil
}
