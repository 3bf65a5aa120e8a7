// Package solverlog provides the structured search-progress logging used
// by cmd/yasat, playing the role the teacher's main.go/solver.go fill with
// ad hoc fmt.Printf("c ...", ...) lines written directly to stdout in the
// DIMACS "comment" convention. log/slog replaces that with leveled,
// structured records: this module is new relative to the teacher (which
// does not use slog), chosen because it is the standard library's own
// idiomatic successor to print-statement logging and needs no additional
// dependency to exercise.
package solverlog

import (
	"io"
	"log/slog"
	"time"

	"github.com/jlang/yasat/internal/sat"
)

// New returns a logger that writes human-readable text to w at the given
// level. Verbose runs (-v) use slog.LevelDebug so that per-decision detail
// can be attached later without a second logging path; quiet runs use
// slog.LevelInfo.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// LogInstance reports the size of a freshly loaded instance, at debug level
// so that only verbose loggers print it.
func LogInstance(l *slog.Logger, numVars, numClauses int) {
	l.Debug("loaded instance", "variables", numVars, "clauses", numClauses)
}

// LogResult reports the final search outcome and statistics at debug level,
// mirroring the teacher's printSearchStats/closing "c status:" lines.
func LogResult(l *slog.Logger, status sat.Status, stats sat.Stats, elapsed time.Duration) {
	l.Debug("search finished",
		"status", status.String(),
		"decisions", stats.Decisions,
		"conflicts", stats.Conflicts,
		"propagated", stats.Propagated,
		"elapsed", elapsed,
	)
}
