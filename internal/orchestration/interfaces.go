package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/progress"
	"github.com/agbru/polyroots/internal/rootset"
	"github.com/agbru/polyroots/internal/validation"
)

// EvaluationResult is the outcome of one evaluator's validation pass. It is
// the shared domain type between orchestration and presentation layers.
type EvaluationResult struct {
	// Name is the evaluator's display name.
	Name string
	// Report holds the value at every root. It is empty if Err is set.
	Report validation.Report
	// Duration is the time the evaluator took over all roots.
	Duration time.Duration
	// Err contains any error that stopped the evaluator.
	Err error
}

// Outcome is everything a pipeline run produced.
type Outcome struct {
	// Source is where the document was read from.
	Source string
	// N is the declared root count; K the construction size actually used.
	N, K int
	// Roots are all decoded roots in input order.
	Roots rootset.RootSet
	// Polynomial is ∏(x − rᵢ) over the first K roots.
	Polynomial *polynomial.Polynomial
	// BuildDuration is the time spent folding the roots.
	BuildDuration time.Duration
	// Results holds one entry per evaluator, in run order.
	Results []EvaluationResult
	// Mismatch is set when two successful evaluators disagree on any value.
	Mismatch bool
	// Warnings carries non-fatal document inconsistencies.
	Warnings []string
}

// FirstValid returns the first result, in run order, whose evaluator did
// not fail.
func (o Outcome) FirstValid() (EvaluationResult, bool) {
	for _, r := range o.Results {
		if r.Err == nil {
			return r, true
		}
	}
	return EvaluationResult{}, false
}

// ProgressReporter displays pipeline progress.
//
// DisplayProgress is started in its own goroutine and must call wg.Done once
// progressChan is closed. numTracks is the number of concurrent tracks
// (the build plus one per evaluator).
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTracks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTracks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTracks int, out io.Writer) {
	f(wg, progressChan, numTracks, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet and JSON modes and in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	progress.Drain(progressChan)
}

// ResultPresenter presents the outcome of a run.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per evaluator.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)

	// PresentReport displays the roots, coefficients and validation values
	// taken from result.
	PresentReport(outcome Outcome, result EvaluationResult, out io.Writer)

	// HandleError maps an error to an exit code, reporting it on out.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
