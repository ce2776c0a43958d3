// Package diagnostics tags each interpreter run with an identifier and
// reports humanized evaluation statistics, the way sentra's CLI layers
// observability on top of its VM runs — adapted here to a single-pass
// tree-walking evaluator instead of a bytecode VM's instruction counters.
package diagnostics

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Run tracks one interpreter invocation from start to finish: a UUID that
// identifies it in error diagnostics and the interactive REPL banner, plus
// the counters --stats reports.
type Run struct {
	ID        uuid.UUID
	started   time.Time
	Statements int64
	MaxDigits int64 // widest BigInt digit-vector length seen, for --stats
}

// NewRun starts a fresh, timestamped run identifier.
func NewRun() *Run {
	return &Run{ID: uuid.New(), started: time.Now()}
}

// ObserveInt records a BigInt value's digit-vector width so --stats can
// report the largest integer magnitude the run touched.
func (r *Run) ObserveInt(digits int) {
	if int64(digits) > r.MaxDigits {
		r.MaxDigits = int64(digits)
	}
}

// Banner returns a one-line "run <id>" identifier for the run. The REPL
// formats its own start-up banner and does not call it.
func (r *Run) Banner() string {
	return fmt.Sprintf("run %s", r.ID)
}

// WriteStats prints a humanized summary of the run to w, used by --stats
// and the REPL's :stats meta-command.
func (r *Run) WriteStats(w io.Writer) {
	elapsed := time.Since(r.started)
	fmt.Fprintf(w, "run %s: %s statements, widest int %s digits, elapsed %s\n",
		r.ID,
		humanize.Comma(r.Statements),
		humanize.Comma(r.MaxDigits),
		elapsed.Round(time.Microsecond),
	)
}

// Fail formats the stderr diagnostic line for an aborted run: the required
// "Runtime Error:" prefix, the error's own single-line kind-and-message
// text, and the run ID for cross-referencing --stats output.
func (r *Run) Fail(err error) string {
	return fmt.Sprintf("Runtime Error: %s [run %s]", err.Error(), r.ID)
}
