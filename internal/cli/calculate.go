package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/polyroots/internal/config"
	"github.com/agbru/polyroots/internal/input"
	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/ui"
)

// PrintExecutionConfig displays the document being processed, the timeout
// and the parallelism threshold.
func PrintExecutionConfig(cfg config.AppConfig, doc input.Document, out io.Writer) {
	k := doc.K
	if cfg.K != config.DefaultK {
		k = cfg.K
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Rebuilding from %s%d%s of %s%d%s roots read from %s%s%s, timeout %s%s%s.\n",
		ui.ColorMagenta(), k, ui.ColorReset(),
		ui.ColorMagenta(), len(doc.Entries), ui.ColorReset(),
		ui.ColorCyan(), doc.Source, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Parallel build threshold: %s%d%s bits.\n", ui.ColorCyan(), cfg.Threshold, ui.ColorReset())
}

// PrintExecutionMode displays which evaluators will validate the result.
func PrintExecutionMode(evaluators []polynomial.Evaluator, out io.Writer) {
	var modeDesc string
	if len(evaluators) > 1 {
		modeDesc = fmt.Sprintf("Cross-checked validation with %d evaluators", len(evaluators))
	} else if len(evaluators) == 1 {
		modeDesc = fmt.Sprintf("Validation with the %s%s%s evaluator",
			ui.ColorGreen(), evaluators[0].Name(), ui.ColorReset())
	} else {
		modeDesc = "No evaluator selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
