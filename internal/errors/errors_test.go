// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--threshold"),
			expected: "invalid value 42 for flag --threshold",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error returns cause message",
			cause:       errors.New("division by zero"),
			expectedMsg: "division by zero",
		},
		{
			name:        "Unwrap returns cause",
			cause:       errors.New("original error"),
			expectedMsg: "original error",
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			cause:       context.Canceled,
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CalculationError{Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if tt.checkUnwrap && err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}

			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestCalculationError_Stage(t *testing.T) {
	t.Parallel()
	err := CalculationError{Stage: "decode", Cause: DigitError{Digits: "-5", Pos: 0, Char: '-', Radix: 10}}
	want := `decode: invalid digit '-' at position 0 of "-5" for radix 10`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrInvalidDigit) {
		t.Error("errors.Is should see ErrInvalidDigit through CalculationError")
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         TimeoutError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      TimeoutError{Operation: "build", Limit: 30 * time.Second},
			expected: `operation "build" timed out after 30s`,
		},
		{
			name:     "Error with subsecond limit",
			err:      TimeoutError{Operation: "validate", Limit: 500 * time.Millisecond},
			expected: `operation "validate" timed out after 500ms`,
		},
		{
			name:        "errors.As works with TimeoutError",
			err:         TimeoutError{Operation: "decode", Limit: 10 * time.Second},
			expected:    `operation "decode" timed out after 10s`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var timeoutErr TimeoutError
				if !errors.As(err, &timeoutErr) {
					t.Error("expected error to be TimeoutError type")
				}
				if timeoutErr.Operation != tt.err.Operation {
					t.Errorf("expected Operation %q, got %q", tt.err.Operation, timeoutErr.Operation)
				}
				if timeoutErr.Limit != tt.err.Limit {
					t.Errorf("expected Limit %v, got %v", tt.err.Limit, timeoutErr.Limit)
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         ValidationError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "k", Message: "must be non-negative"},
			expected: `validation error for "k": must be non-negative`,
		},
		{
			name:     "Error with different field",
			err:      ValidationError{Field: "threshold", Message: "must be greater than zero"},
			expected: `validation error for "threshold": must be greater than zero`,
		},
		{
			name:        "errors.As works with ValidationError",
			err:         ValidationError{Field: "eval", Message: "unknown evaluator"},
			expected:    `validation error for "eval": unknown evaluator`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var validationErr ValidationError
				if !errors.As(err, &validationErr) {
					t.Error("expected error to be ValidationError type")
				}
				if validationErr.Field != tt.err.Field {
					t.Errorf("expected Field %q, got %q", tt.err.Field, validationErr.Field)
				}
				if validationErr.Message != tt.err.Message {
					t.Errorf("expected Message %q, got %q", tt.err.Message, validationErr.Message)
				}
			}
		})
	}
}

func TestDomainErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
		kind     error
	}{
		{
			name:     "RadixError",
			err:      RadixError{Radix: 37, Min: 2, Max: 36},
			expected: "invalid radix 37: must be in [2, 36]",
			kind:     ErrInvalidRadix,
		},
		{
			name:     "DigitError",
			err:      DigitError{Digits: "12a", Pos: 2, Char: 'a', Radix: 10},
			expected: `invalid digit 'a' at position 2 of "12a" for radix 10`,
			kind:     ErrInvalidDigit,
		},
		{
			name:     "DigitError empty",
			err:      DigitError{Digits: "", Pos: -1, Radix: 10},
			expected: `invalid digit string "": empty`,
			kind:     ErrInvalidDigit,
		},
		{
			name:     "InsufficientRootsError",
			err:      InsufficientRootsError{Requested: 5, Available: 3},
			expected: "insufficient roots: requested 5, only 3 available",
			kind:     ErrInsufficientRoots,
		},
		{
			name:     "OverflowError",
			err:      OverflowError{Value: "18446744073709551616", Bits: 64},
			expected: `arithmetic overflow: "18446744073709551616" does not fit in 64 bits`,
			kind:     ErrArithmeticOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			wrapped := WrapError(tt.err, "entry %q", "3")
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("kind lost through WrapError: %v", wrapped)
			}
			if !IsInputError(wrapped) {
				t.Errorf("IsInputError(%v) = false", wrapped)
			}
		})
	}
}

func TestDomainErrors_KindsAreDistinct(t *testing.T) {
	t.Parallel()
	if errors.Is(RadixError{Radix: 1}, ErrInvalidDigit) {
		t.Error("RadixError must not match ErrInvalidDigit")
	}
	if errors.Is(DigitError{Pos: 0}, ErrInsufficientRoots) {
		t.Error("DigitError must not match ErrInsufficientRoots")
	}
	if IsInputError(errors.New("plain")) {
		t.Error("plain error reported as input error")
	}
	if !IsInputError(WrapError(ValidationError{Field: "keys.k", Message: "missing"}, "input.json")) {
		t.Error("wrapped ValidationError not reported as input error")
	}
}

func TestNewErrorTypes_ErrorsAsWithWrapping(t *testing.T) {
	t.Parallel()

	t.Run("TimeoutError wrapped in CalculationError", func(t *testing.T) {
		t.Parallel()
		inner := TimeoutError{Operation: "build", Limit: 5 * time.Second}
		err := CalculationError{Cause: inner}

		var timeoutErr TimeoutError
		if !errors.As(err, &timeoutErr) {
			t.Error("errors.As should find TimeoutError through CalculationError")
		}
	})

	t.Run("ValidationError wrapped with WrapError", func(t *testing.T) {
		t.Parallel()
		inner := ValidationError{Field: "k", Message: "too large"}
		err := WrapError(inner, "config check failed")

		var validationErr ValidationError
		if !errors.As(err, &validationErr) {
			t.Error("errors.As should find ValidationError through WrapError")
		}
	})

	t.Run("InsufficientRootsError wrapped in CalculationError", func(t *testing.T) {
		t.Parallel()
		inner := InsufficientRootsError{Requested: 4, Available: 2}
		err := CalculationError{Stage: "select", Cause: inner}

		var rootsErr InsufficientRootsError
		if !errors.As(err, &rootsErr) {
			t.Error("errors.As should find InsufficientRootsError through CalculationError")
		}
		if rootsErr.Requested != 4 || rootsErr.Available != 2 {
			t.Errorf("unexpected fields: %+v", rootsErr)
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("connection reset"),
			format:      "failed to connect to %s:%d",
			args:        []any{"localhost", 8080},
			expectedMsg: "failed to connect to localhost:8080: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	// Verify exit codes are distinct and match expected values
	codes := map[string]int{
		"ExitSuccess":         ExitSuccess,
		"ExitErrorGeneric":    ExitErrorGeneric,
		"ExitErrorTimeout":    ExitErrorTimeout,
		"ExitErrorMismatch":   ExitErrorMismatch,
		"ExitErrorConfig":     ExitErrorConfig,
		"ExitErrorInput":      ExitErrorInput,
		"ExitErrorValidation": ExitErrorValidation,
		"ExitErrorCanceled":   ExitErrorCanceled,
	}

	// Check expected values
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	// Check all codes are unique
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
