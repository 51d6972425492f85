package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/format"
	"github.com/agbru/polyroots/internal/metrics"
	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/progress"
	"github.com/agbru/polyroots/internal/ui"
	"github.com/agbru/polyroots/internal/validation"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTracks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numTracks, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output. Verbose disables digit truncation; Details adds timings.
type CLIResultPresenter struct {
	Verbose bool
	Details bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays one row per evaluator with its duration
// and verdict. Padding is computed on the raw text so ANSI codes do not
// break the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Evaluator")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sEvaluator%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Evaluator")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			resultStatus(res))
	}
}

func resultStatus(res orchestration.EvaluationResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
	}
	if defects := len(res.Report.Defects()); defects > 0 {
		return fmt.Sprintf("%s❌ %d non-zero%s", ui.ColorRed(), defects, ui.ColorReset())
	}
	return fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentReport displays the decoded roots, the coefficients from the
// constant term up, and the value of the polynomial at every root.
func (p CLIResultPresenter) PresentReport(outcome orchestration.Outcome, result orchestration.EvaluationResult, out io.Writer) {
	poly := outcome.Polynomial

	fmt.Fprintf(out, "\n%s--- Roots (n = %d, k = %d) ---%s\n", ui.ColorBold(), outcome.N, outcome.K, ui.ColorReset())
	for i, r := range outcome.Roots.Roots {
		marker := ""
		if i < outcome.K {
			marker = fmt.Sprintf(" %s(used)%s", ui.ColorCyan(), ui.ColorReset())
		}
		fmt.Fprintf(out, "  [%s] %s%s\n", r.ID, p.number(r.Value.String()), marker)
	}

	fmt.Fprintf(out, "\n%s--- Polynomial coefficients (lowest to highest degree) ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Degree: %s%d%s, largest coefficient: %s%s%s bits.\n",
		ui.ColorMagenta(), poly.Degree(), ui.ColorReset(),
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(poly.MaxBitLen())), ui.ColorReset())
	for i, c := range poly.Coefficients() {
		fmt.Fprintf(out, "  c%d = %s\n", i, p.number(c.String()))
	}

	fmt.Fprintf(out, "\n%s--- Validation of roots (%s) ---%s\n", ui.ColorBold(), result.Name, ui.ColorReset())
	for _, e := range result.Report.Entries {
		fmt.Fprintf(out, "  f(%s) = %s%s%s\n", p.number(e.Root.String()), entryColor(e), p.number(e.Value.String()), ui.ColorReset())
	}

	if p.Details {
		fmt.Fprintf(out, "\n%s--- Timings ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Build time      : %s%s%s\n", ui.ColorGreen(), displayDuration(outcome.BuildDuration), ui.ColorReset())
		fmt.Fprintf(out, "Validation time : %s%s%s\n", ui.ColorGreen(), displayDuration(result.Duration), ui.ColorReset())
	}
}

func entryColor(e validation.Entry) string {
	switch {
	case e.Used && e.Zero():
		return ui.ColorGreen()
	case e.Used:
		return ui.ColorRed()
	default:
		return ""
	}
}

func (p CLIResultPresenter) number(s string) string {
	if p.Verbose {
		return s
	}
	return format.TruncateDigits(s, DisplayEdges)
}

// HandleError maps err to an exit code and reports it on out.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplaySummary renders a boxed one-glance summary of the run.
func DisplaySummary(outcome orchestration.Outcome, exitCode int, out io.Writer) {
	title := "Validation passed"
	if exitCode != apperrors.ExitSuccess {
		title = "Validation failed"
	}
	lines := []string{
		fmt.Sprintf("source  : %s", outcome.Source),
		fmt.Sprintf("roots   : %d decoded, %d used", outcome.Roots.Len(), outcome.K),
	}
	if outcome.Polynomial != nil {
		lines = append(lines, fmt.Sprintf("degree  : %d", outcome.Polynomial.Degree()))
	}
	lines = append(lines, fmt.Sprintf("evaluators: %d", len(outcome.Results)))
	fmt.Fprintln(out, ui.Panel(title, lines, exitCode == apperrors.ExitSuccess))
}

// DisplayMemoryStats shows how much memory the run allocated.
func DisplayMemoryStats(usage metrics.MemoryUsage, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(usage.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(usage.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", usage.GCCycles)
}

// DisplayWarnings prints non-fatal document inconsistencies.
func DisplayWarnings(warnings []string, out io.Writer) {
	for _, w := range warnings {
		fmt.Fprintf(out, "%sWarning:%s %s\n", ui.ColorYellow(), ui.ColorReset(), w)
	}
}
