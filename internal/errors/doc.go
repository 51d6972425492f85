// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// input, calculation, etc.) and for carrying the underlying cause.
//
// The domain error kinds (invalid radix, invalid digit, insufficient roots,
// arithmetic overflow) are exposed as sentinels; the structured types that
// carry their details match the sentinels through errors.Is.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapper types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
