// Command yasat reads a DIMACS CNF instance (or generates a random one) and
// reports its satisfiability, adapted from the teacher's root main.go:
// same cpuprof/memprof profiling hooks, same "parse config, run, exit
// nonzero on error" shape, generalized with a search timeout, structured
// logging, and the -gen random-instance mode (see SPEC_FULL.md §6).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jlang/yasat/internal/config"
	"github.com/jlang/yasat/internal/dimacs"
	"github.com/jlang/yasat/internal/sat"
	"github.com/jlang/yasat/internal/solverlog"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}

func run(cfg *config.Config) error {
	logger := solverlog.New(os.Stderr, cfg.Verbose)

	var inst *dimacs.Instance
	if cfg.Generate {
		inst = dimacs.GenerateRandom3SAT(cfg.GenSeed, cfg.GenVars, cfg.GenRatio)
	} else {
		var err error
		inst, err = dimacs.ReadFile(cfg.InstanceFile, cfg.Gzipped)
		if err != nil {
			return fmt.Errorf("could not parse instance: %w", err)
		}
	}
	solverlog.LogInstance(logger, inst.NumVars, len(inst.Clauses))

	opts := sat.DefaultOptions()
	opts.PureLiteral = cfg.PureLiteral
	solver := sat.NewSolver(inst.NumVars, inst.Clauses, opts)

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	status := solver.Solve(ctx)
	elapsed := time.Since(start)

	solverlog.LogResult(logger, status, solver.Stats, elapsed)

	return dimacs.WriteResult(os.Stdout, status, solver.Model)
}
