package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agbru/polyroots/internal/cli"
	"github.com/agbru/polyroots/internal/config"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/ui"
)

// DefaultHTTPTimeout bounds a single input download.
const DefaultHTTPTimeout = 30 * time.Second

// Application represents the polyroots application instance.
type Application struct {
	Config     config.AppConfig
	Factory    polynomial.EvaluatorFactory
	HTTPClient *http.Client
	Logger     logging.Logger
	ErrWriter  io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EvaluatorFactory for the application.
func WithFactory(f polynomial.EvaluatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithHTTPClient sets the client used for http(s) inputs.
func WithHTTPClient(c *http.Client) AppOption {
	return func(a *Application) { a.HTTPClient = c }
}

// WithLogger replaces the stderr logger built from -log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = polynomial.NewDefaultFactory()
	}
	if app.HTTPClient == nil {
		app.HTTPClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	programName := "polyroots"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		logger, err := logging.NewLeveledLogger(errWriter, cfg.LogLevel, cfg.NoColor)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Logger = logger
	}
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.NoColor)
	return a.runValidate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForParseError maps an error returned by New to an exit code.
func ExitCodeForParseError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
