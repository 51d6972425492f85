// Package config provides the configuration management for the polyroots
// command. It defines the configuration structure, parses command-line
// arguments, applies environment overrides and validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/polynomial"
)

// EnvPrefix is the prefix for all environment variables used by polyroots.
const EnvPrefix = "POLYROOTS_"

// Default configuration values.
const (
	// DefaultInput is the document read when no input is given.
	DefaultInput = "input.json"
	// DefaultK selects the document's keys.k.
	DefaultK = -1
	// DefaultEval runs every registered evaluator.
	DefaultEval = "all"
	// DefaultTimeout bounds the whole pipeline.
	DefaultTimeout = time.Minute
	// DefaultLogLevel is the stderr log level.
	DefaultLogLevel = "warn"
)

// Supported shells for -completion.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is a file path, "-" for stdin, or an http(s) URL.
	Input string
	// K overrides keys.k when non-negative.
	K int
	// Eval selects the evaluator: "all" or a registered name.
	Eval string
	// Timeout sets the maximum duration of the run.
	Timeout time.Duration
	// Threshold is the coefficient bit length at which a build step is
	// parallelized. Zero means "estimate from the hardware".
	Threshold int
	// OutputFile, if set, receives the report in the plain-text layout.
	OutputFile string
	// JSONOutput prints the outcome as JSON on stdout.
	JSONOutput bool
	// Quiet prints only the coefficients, one per line.
	Quiet bool
	// Verbose prints full values instead of truncated ones.
	Verbose bool
	// Details adds timings and memory statistics to the report.
	Details bool
	// NoColor disables colored output. Also set by the NO_COLOR variable.
	NoColor bool
	// MetricsFile, if set, receives Prometheus metrics in text format.
	MetricsFile string
	// LogLevel filters the stderr log (debug, info, warn, error, off).
	LogLevel string
	// Completion prints a shell completion script and exits.
	Completion string
	// ShowVersion prints version information and exits.
	ShowVersion bool
}

// ToBuildOptions converts the configuration into polynomial build options.
func (c AppConfig) ToBuildOptions() polynomial.BuildOptions {
	return polynomial.BuildOptions{ParallelThreshold: c.Threshold}
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableEvaluators []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Threshold < 0 {
		return apperrors.NewConfigError("parallelism threshold cannot be negative: %d", c.Threshold)
	}
	if c.K < DefaultK {
		return apperrors.NewConfigError("k must be non-negative (or %d to use the document's value): %d", DefaultK, c.K)
	}
	if c.Input == "" {
		return apperrors.NewConfigError("input must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Completion != "" && !contains(completionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Valid shells are: %s", c.Completion, strings.Join(completionShells, ", "))
	}
	if c.JSONOutput && c.Quiet {
		return apperrors.NewConfigError("-json and -quiet are mutually exclusive")
	}
	if c.Eval != "all" && !contains(availableEvaluators, c.Eval) {
		return apperrors.NewConfigError("unrecognized evaluator: '%s'. Valid evaluators are: 'all' or [%s]", c.Eval, strings.Join(availableEvaluators, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags not given on the command line, fills in
// the adaptive threshold and validates the result.
//
// A single positional argument is accepted as the input source when -input
// is not given. flag.ErrHelp is returned unchanged for -h.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableEvaluators []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	evalHelp := fmt.Sprintf("Evaluator to validate with: 'all' (default) or one of [%s].", strings.Join(availableEvaluators, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Input, "input", DefaultInput, "Input document: file path, '-' for stdin, or http(s) URL.")
	fs.StringVar(&config.Input, "i", DefaultInput, "Input document (shorthand).")
	fs.IntVar(&config.K, "k", DefaultK, "Number of roots to build from (-1 uses keys.k from the document).")
	fs.StringVar(&config.Eval, "eval", DefaultEval, evalHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the run.")
	fs.IntVar(&config.Threshold, "threshold", 0, "Coefficient size (in bits) from which build steps run in parallel (0 = estimate).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the report to this file (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output the result in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print only the coefficients.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display full values instead of truncating long numbers.")
	fs.BoolVar(&config.Details, "d", false, "Display timings and memory details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level for stderr: debug, info, warn, error, off.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(errorWriter, "Configuration error: at most one input may be given")
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	}
	if fs.NArg() == 1 && !isFlagSetAny(fs, "input", "i") {
		config.Input = fs.Arg(0)
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveThresholds(config)

	config.Eval = strings.ToLower(config.Eval)
	if err := config.Validate(availableEvaluators); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
