// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResult], [DisplayProgress], [DisplayJSON].
//
//   - Write* functions write uncolored data for files and pipes.
//     Examples: [WriteReport], [WriteReportToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/polynomial"
)

// WriteReport writes the plain-text report: the header line, every decoded
// root, the coefficients from the constant term up, and one "f(r) = v" line
// per root taken from result.
func WriteReport(w io.Writer, outcome orchestration.Outcome, result orchestration.EvaluationResult) error {
	bw := &errWriter{w: w}
	bw.printf("n = %d, k = %d\n", outcome.N, outcome.K)
	bw.printf("Extracted roots in decimal:\n")
	for _, r := range outcome.Roots.Roots {
		bw.printf("%s\n", r.Value)
	}
	bw.printf("Polynomial coefficients (lowest to highest degree):\n")
	if outcome.Polynomial != nil {
		for _, c := range outcome.Polynomial.Coefficients() {
			bw.printf("%s\n", c)
		}
	}
	bw.printf("Validation of roots:\n")
	for _, e := range result.Report.Entries {
		bw.printf("f(%s) = %s\n", e.Root, e.Value)
	}
	return bw.err
}

// errWriter keeps the first write error so WriteReport can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

// WriteReportToFile writes the report to path, creating parent directories
// as needed.
func WriteReportToFile(path string, outcome orchestration.Outcome, result orchestration.EvaluationResult) (err error) {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return WriteReport(file, outcome, result)
}

// DisplayQuietResult prints the coefficients, constant term first, one per
// line.
func DisplayQuietResult(out io.Writer, p *polynomial.Polynomial) {
	if p == nil {
		return
	}
	for _, c := range p.Coefficients() {
		fmt.Fprintln(out, c)
	}
}

type jsonRoot struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Used  bool   `json:"used"`
}

type jsonValue struct {
	ID    string `json:"id"`
	Root  string `json:"root"`
	Value string `json:"value"`
}

type jsonEvaluator struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Defects    int     `json:"defects"`
	Error      string  `json:"error,omitempty"`
}

type jsonOutcome struct {
	Source       string          `json:"source"`
	N            int             `json:"n"`
	K            int             `json:"k"`
	Degree       int             `json:"degree"`
	Roots        []jsonRoot      `json:"roots"`
	Coefficients []string        `json:"coefficients"`
	Validation   []jsonValue     `json:"validation"`
	Evaluators   []jsonEvaluator `json:"evaluators"`
	Mismatch     bool            `json:"mismatch"`
	Warnings     []string        `json:"warnings,omitempty"`
	ExitCode     int             `json:"exit_code"`
}

// DisplayJSON writes the outcome as one indented JSON object. Big integers
// are encoded as decimal strings. The validation values are taken from the
// first evaluator that succeeded.
func DisplayJSON(out io.Writer, outcome orchestration.Outcome, exitCode int) error {
	doc := jsonOutcome{
		Source:       outcome.Source,
		N:            outcome.N,
		K:            outcome.K,
		Roots:        make([]jsonRoot, 0, outcome.Roots.Len()),
		Coefficients: []string{},
		Validation:   []jsonValue{},
		Evaluators:   make([]jsonEvaluator, 0, len(outcome.Results)),
		Mismatch:     outcome.Mismatch,
		Warnings:     outcome.Warnings,
		ExitCode:     exitCode,
	}
	for i, r := range outcome.Roots.Roots {
		doc.Roots = append(doc.Roots, jsonRoot{ID: r.ID, Value: r.Value.String(), Used: i < outcome.K})
	}
	if outcome.Polynomial != nil {
		doc.Degree = outcome.Polynomial.Degree()
		for _, c := range outcome.Polynomial.Coefficients() {
			doc.Coefficients = append(doc.Coefficients, c.String())
		}
	}
	if res, ok := outcome.FirstValid(); ok {
		for _, e := range res.Report.Entries {
			doc.Validation = append(doc.Validation, jsonValue{ID: e.ID, Root: e.Root.String(), Value: e.Value.String()})
		}
	}
	for _, res := range outcome.Results {
		ev := jsonEvaluator{
			Name:       res.Name,
			DurationMS: float64(res.Duration.Microseconds()) / 1000,
			Defects:    len(res.Report.Defects()),
		}
		if res.Err != nil {
			ev.Error = res.Err.Error()
		}
		doc.Evaluators = append(doc.Evaluators, ev)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
