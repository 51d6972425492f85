package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorTimeout    = 2   // Indicates the operation timed out.
	ExitErrorMismatch   = 3   // Indicates a result mismatch between evaluators.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorInput      = 5   // Indicates malformed or insufficient input roots.
	ExitErrorValidation = 6   // Indicates a used root did not evaluate to zero.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Domain error kinds. The structured error types below match these sentinels
// through errors.Is, so callers can branch on the kind without caring about
// the details carried by the concrete type.
var (
	// ErrInvalidRadix reports a radix outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("invalid radix")
	// ErrInvalidDigit reports a character that is not a digit of the radix,
	// including any sign character.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInsufficientRoots reports a construction size k larger than the
	// number of decoded roots.
	ErrInsufficientRoots = errors.New("insufficient roots")
	// ErrArithmeticOverflow reports a value that does not fit a fixed-width
	// representation. Arbitrary-precision paths never return it.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a failure of the build or validation
// pipeline while preserving the original cause.
type CalculationError struct {
	// Stage names the pipeline stage that failed ("decode", "build", ...).
	Stage string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause, prefixed with
// the stage when known.
func (e CalculationError) Error() string {
	if e.Stage == "" {
		return e.Cause.Error()
	}
	return e.Stage + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a pipeline timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// RadixError reports a radix outside the supported range.
type RadixError struct {
	Radix int
	Min   int
	Max   int
}

func (e RadixError) Error() string {
	return fmt.Sprintf("invalid radix %d: must be in [%d, %d]", e.Radix, e.Min, e.Max)
}

// Is reports whether target is ErrInvalidRadix.
func (e RadixError) Is(target error) bool { return target == ErrInvalidRadix }

// DigitError reports the first character of a digit string that is not a
// valid digit in the stated radix. Pos is the byte offset of the character;
// Pos is -1 for an empty digit string.
type DigitError struct {
	Digits string
	Pos    int
	Char   rune
	Radix  int
}

func (e DigitError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid digit string %q: empty", e.Digits)
	}
	return fmt.Sprintf("invalid digit %q at position %d of %q for radix %d", e.Char, e.Pos, e.Digits, e.Radix)
}

// Is reports whether target is ErrInvalidDigit.
func (e DigitError) Is(target error) bool { return target == ErrInvalidDigit }

// InsufficientRootsError reports a request for more construction roots than
// were decoded.
type InsufficientRootsError struct {
	Requested int
	Available int
}

func (e InsufficientRootsError) Error() string {
	return fmt.Sprintf("insufficient roots: requested %d, only %d available", e.Requested, e.Available)
}

// Is reports whether target is ErrInsufficientRoots.
func (e InsufficientRootsError) Is(target error) bool { return target == ErrInsufficientRoots }

// OverflowError reports a value that does not fit in Bits bits.
type OverflowError struct {
	Value string
	Bits  int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow: %q does not fit in %d bits", e.Value, e.Bits)
}

// Is reports whether target is ErrArithmeticOverflow.
func (e OverflowError) Is(target error) bool { return target == ErrArithmeticOverflow }

// IsInputError reports whether err carries one of the domain error kinds
// that stem from the supplied roots rather than from the environment, or a
// ValidationError raised while reading them.
func IsInputError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrInvalidRadix) ||
		errors.Is(err, ErrInvalidDigit) ||
		errors.Is(err, ErrInsufficientRoots) ||
		errors.Is(err, ErrArithmeticOverflow)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
