package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/input"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/metrics"
	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/progress"
	"github.com/agbru/polyroots/internal/rootset"
	"github.com/agbru/polyroots/internal/validation"
)

// ProgressBufferMultiplier sizes the progress channel per track. A larger
// buffer reduces dropped updates when the display is slow.
const ProgressBufferMultiplier = 5

// UseDocumentK selects the document's keys.k as the construction size.
const UseDocumentK = -1

var tracer = otel.Tracer("github.com/agbru/polyroots/internal/orchestration")

// Options configures a pipeline run.
type Options struct {
	// K overrides the document's construction size unless it is UseDocumentK.
	K int
	// ParallelThreshold is passed to polynomial.BuildOptions.
	ParallelThreshold int
	// Evaluators validate the polynomial concurrently. At least one is required.
	Evaluators []polynomial.Evaluator
	// Reporter displays progress; nil means NullProgressReporter.
	Reporter ProgressReporter
	// Out receives progress output.
	Out io.Writer
	// Recorder, if set, receives run metrics.
	Recorder *metrics.Recorder
	// Logger, if set, receives stage timings and warnings.
	Logger logging.Logger
}

// Run executes the pipeline on doc. Errors in decoding, selection or
// construction are returned as apperrors.CalculationError naming the stage;
// evaluator failures are carried in Outcome.Results instead.
func Run(ctx context.Context, doc input.Document, opts Options) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "polyroots.run", trace.WithAttributes(
		attribute.String("source", doc.Source),
		attribute.Int("entries", len(doc.Entries)),
	))
	defer span.End()

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	outcome := Outcome{Source: doc.Source, N: doc.N, Warnings: doc.Warnings()}
	for _, w := range outcome.Warnings {
		logger.Warn("inconsistent input document", logging.String("detail", w))
	}
	if len(opts.Evaluators) == 0 {
		return outcome, fail(span, apperrors.ConfigError{Message: "no evaluator selected"})
	}

	roots, err := decode(ctx, doc.Entries)
	if err != nil {
		return outcome, fail(span, apperrors.CalculationError{Stage: "decode", Cause: err})
	}
	outcome.Roots = roots
	if opts.Recorder != nil {
		opts.Recorder.RootsDecoded(roots.Len())
	}
	logger.Debug("roots decoded", logging.Int("count", roots.Len()))

	k := opts.K
	if k == UseDocumentK {
		k = doc.K
	}
	selected, err := roots.Select(k)
	if err != nil {
		return outcome, fail(span, apperrors.CalculationError{Stage: "select", Cause: err})
	}
	outcome.K = k
	span.SetAttributes(attribute.Int("k", k))

	numTracks := 1 + len(opts.Evaluators)
	progressChan := make(chan progress.ProgressUpdate, numTracks*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, numTracks, out)
	stopDisplay := func() {
		close(progressChan)
		displayWg.Wait()
	}

	p, buildDuration, err := build(ctx, selected, opts.ParallelThreshold, progressChan)
	if err != nil {
		stopDisplay()
		return outcome, fail(span, apperrors.CalculationError{Stage: "build", Cause: err})
	}
	outcome.Polynomial = p
	outcome.BuildDuration = buildDuration
	if opts.Recorder != nil {
		opts.Recorder.PolynomialBuilt(p.Degree(), buildDuration)
	}
	logger.Debug("polynomial built",
		logging.Int("degree", p.Degree()),
		logging.Int("max_bits", p.MaxBitLen()),
		logging.Duration("elapsed", buildDuration))

	outcome.Results = ExecuteValidation(ctx, p, roots, k, opts.Evaluators, progressChan)
	stopDisplay()

	for _, res := range outcome.Results {
		if opts.Recorder != nil {
			opts.Recorder.EvaluationDone(res.Name, res.Duration, len(res.Report.Defects()), res.Err)
		}
		if res.Err != nil {
			logger.Error("evaluator failed", res.Err, logging.String("evaluator", res.Name))
		}
	}
	outcome.Mismatch = CrossCheck(outcome.Results)
	span.SetAttributes(attribute.Bool("mismatch", outcome.Mismatch))
	return outcome, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func decode(ctx context.Context, entries []rootset.Encoded) (rootset.RootSet, error) {
	_, span := tracer.Start(ctx, "polyroots.decode")
	defer span.End()
	return rootset.Decode(entries)
}

func build(ctx context.Context, roots []*big.Int, threshold int, ch chan<- progress.ProgressUpdate) (*polynomial.Polynomial, time.Duration, error) {
	ctx, span := tracer.Start(ctx, "polyroots.build", trace.WithAttributes(attribute.Int("roots", len(roots))))
	defer span.End()

	start := time.Now()
	p, err := polynomial.FromRoots(ctx, roots, polynomial.BuildOptions{
		ParallelThreshold: threshold,
		Progress:          progress.Sender(ch, 0, "build"),
	})
	if err != nil {
		return nil, 0, err
	}
	if len(roots) == 0 {
		progress.Sender(ch, 0, "build")(1)
	}
	return p, time.Since(start), nil
}

// ExecuteValidation evaluates p at every root with each evaluator
// concurrently. Results are returned in evaluator order; a failing evaluator
// does not stop the others.
func ExecuteValidation(ctx context.Context, p *polynomial.Polynomial, roots rootset.RootSet, k int, evaluators []polynomial.Evaluator, progressChan chan<- progress.ProgressUpdate) []EvaluationResult {
	ctx, span := tracer.Start(ctx, "polyroots.validate", trace.WithAttributes(attribute.Int("evaluators", len(evaluators))))
	defer span.End()

	var g errgroup.Group
	results := make([]EvaluationResult, len(evaluators))
	for i, ev := range evaluators {
		g.Go(func() error {
			start := time.Now()
			report, err := validation.Validate(ctx, p, roots, k, ev)
			results[i] = EvaluationResult{
				Name: ev.Name(), Report: report, Duration: time.Since(start), Err: err,
			}
			progress.Sender(progressChan, i+1, ev.Name())(1)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// CrossCheck reports whether any two successful results disagree.
func CrossCheck(results []EvaluationResult) bool {
	var ref *validation.Report
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if ref == nil {
			ref = &results[i].Report
			continue
		}
		if !ref.Equal(results[i].Report) {
			return true
		}
	}
	return false
}

// AnalyzeOutcome presents the comparison table and the report, and returns
// the exit code of the run:
//   - ExitSuccess when every used root evaluated to zero;
//   - ExitErrorMismatch when evaluators disagree;
//   - ExitErrorValidation when a used root did not evaluate to zero;
//   - the presenter's code for the first error when no evaluator succeeded.
func AnalyzeOutcome(outcome Outcome, presenter ResultPresenter, out io.Writer) int {
	results := make([]EvaluationResult, len(outcome.Results))
	copy(results, outcome.Results)
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *EvaluationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No evaluator could validate the polynomial.\n")
		return presenter.HandleError(firstError, 0, out)
	}
	if outcome.Mismatch || CrossCheck(results) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The evaluators disagree on the value of the polynomial.\n")
		return apperrors.ExitErrorMismatch
	}

	defects := firstValid.Report.Defects()
	if len(defects) > 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d used roots did not evaluate to zero.\n", len(defects), outcome.K)
		presenter.PresentReport(outcome, *firstValid, out)
		return apperrors.ExitErrorValidation
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All %d used roots evaluate to zero.\n", outcome.K)
	presenter.PresentReport(outcome, *firstValid, out)
	return apperrors.ExitSuccess
}
