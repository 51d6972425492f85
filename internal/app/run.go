package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/polyroots/internal/cli"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/input"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/metrics"
	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/ui"
)

// runValidate loads the document, rebuilds the polynomial, validates it and
// renders the outcome in the configured output mode.
func (a *Application) runValidate(ctx context.Context, out io.Writer) int {
	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel.Cleanup()

	start := time.Now()
	collector := metrics.NewMemoryCollector()
	memBefore := collector.Snapshot()
	recorder := metrics.NewRecorder()
	defer a.writeMetrics(recorder)

	presenter := cli.CLIResultPresenter{Verbose: a.Config.Verbose, Details: a.Config.Details}
	machineOutput := a.Config.Quiet || a.Config.JSONOutput
	statusOut := out
	if machineOutput {
		statusOut = a.ErrWriter
	}

	doc, err := input.Load(ctx, a.Config.Input, a.HTTPClient)
	if err != nil {
		a.Logger.Error("failed to load input", err, logging.String("source", a.Config.Input))
		return presenter.HandleError(err, time.Since(start), statusOut)
	}
	a.Logger.Debug("input loaded",
		logging.String("source", doc.Source),
		logging.Int("n", doc.N),
		logging.Int("k", doc.K),
		logging.Int("entries", len(doc.Entries)))

	evaluators := orchestration.GetEvaluatorsToRun(a.Config.Eval, a.Factory)

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	progressOut := io.Discard
	if !machineOutput {
		cli.PrintExecutionConfig(a.Config, doc, out)
		cli.DisplayWarnings(doc.Warnings(), out)
		cli.PrintExecutionMode(evaluators, out)
		reporter = cli.CLIProgressReporter{}
		progressOut = out
	}

	outcome, err := orchestration.Run(ctx, doc, orchestration.Options{
		K:                 a.Config.K,
		ParallelThreshold: a.Config.ToBuildOptions().ParallelThreshold,
		Evaluators:        evaluators,
		Reporter:          reporter,
		Out:               progressOut,
		Recorder:          recorder,
		Logger:            a.Logger,
	})
	if err != nil {
		a.Logger.Error("run failed", err, logging.Duration("elapsed", time.Since(start)))
		return presenter.HandleError(err, time.Since(start), statusOut)
	}

	var code int
	switch {
	case a.Config.JSONOutput:
		code = orchestration.AnalyzeOutcome(outcome, presenter, io.Discard)
		if err := cli.DisplayJSON(out, outcome, code); err != nil {
			return presenter.HandleError(err, 0, a.ErrWriter)
		}
	case a.Config.Quiet:
		code = orchestration.AnalyzeOutcome(outcome, presenter, io.Discard)
		cli.DisplayQuietResult(out, outcome.Polynomial)
	default:
		code = orchestration.AnalyzeOutcome(outcome, presenter, out)
		fmt.Fprintln(out)
		cli.DisplaySummary(outcome, code, out)
		if a.Config.Details {
			cli.DisplayMemoryStats(collector.Snapshot().Since(memBefore), out)
		}
	}

	if code == apperrors.ExitSuccess || code == apperrors.ExitErrorValidation {
		if err := a.saveReport(outcome, out); err != nil {
			a.Logger.Error("failed to write report", err, logging.String("path", a.Config.OutputFile))
			fmt.Fprintf(a.ErrWriter, "Error writing report: %v\n", err)
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}

	a.Logger.Info("run completed",
		logging.Int("exit_code", code),
		logging.Int("degree", outcome.Polynomial.Degree()),
		logging.Duration("elapsed", time.Since(start)))
	return code
}

// saveReport writes the plain-text report when -output is set.
func (a *Application) saveReport(outcome orchestration.Outcome, out io.Writer) error {
	if a.Config.OutputFile == "" {
		return nil
	}
	res, ok := outcome.FirstValid()
	if !ok {
		return nil
	}
	if err := cli.WriteReportToFile(a.Config.OutputFile, outcome, res); err != nil {
		return err
	}
	if !a.Config.Quiet && !a.Config.JSONOutput {
		fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return nil
}

// writeMetrics dumps the run metrics when -metrics-file is set.
func (a *Application) writeMetrics(recorder *metrics.Recorder) {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := recorder.WriteToTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("failed to write metrics", err, logging.String("path", a.Config.MetricsFile))
		return
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
}
