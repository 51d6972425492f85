// Package radix converts digit strings written in a stated base into exact
// integers and back.
//
// The accepted alphabet is 0-9 followed by A-Z (case-insensitive), giving
// radices 2 through 36. Digit strings are unsigned: a sign character is
// rejected as an invalid digit rather than interpreted, and so are
// whitespace and the underscore separators math/big would otherwise accept.
package radix

import (
	"math/big"
	"math/bits"
	"strings"

	apperrors "github.com/agbru/polyroots/internal/errors"
)

const (
	// MinRadix is the smallest supported base.
	MinRadix = 2
	// MaxRadix is the largest supported base (digits 0-9 then A-Z).
	MaxRadix = 36
)

// DigitValue returns the numeric value of r in the 0-9A-Z alphabet.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// checkRadix validates the radix range.
func checkRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return apperrors.RadixError{Radix: radix, Min: MinRadix, Max: MaxRadix}
	}
	return nil
}

// checkDigits verifies that every character of digits is a digit of radix.
func checkDigits(digits string, radix int) error {
	if digits == "" {
		return apperrors.DigitError{Digits: digits, Pos: -1, Radix: radix}
	}
	for pos, r := range digits {
		v, ok := DigitValue(r)
		if !ok || v >= radix {
			return apperrors.DigitError{Digits: digits, Pos: pos, Char: r, Radix: radix}
		}
	}
	return nil
}

// Decode interprets digits as a base-radix numeral, most significant digit
// first, and returns its exact value.
//
// Errors:
//   - apperrors.RadixError if radix is outside [MinRadix, MaxRadix].
//   - apperrors.DigitError if digits is empty or contains a character that is
//     not a digit of radix (signs included).
func Decode(digits string, radix int) (*big.Int, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if err := checkDigits(digits, radix); err != nil {
		return nil, err
	}
	// The string is fully validated, so SetString cannot see a sign,
	// an underscore or a prefix here.
	v, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return nil, apperrors.DigitError{Digits: digits, Pos: 0, Char: rune(digits[0]), Radix: radix}
	}
	return v, nil
}

// MustDecode is like Decode but panics on error. Intended for tests and
// package-level literals.
func MustDecode(digits string, radix int) *big.Int {
	v, err := Decode(digits, radix)
	if err != nil {
		panic(err)
	}
	return v
}

// Encode renders a non-negative x in the given radix using lower-case
// letters. Negative values are rejected with a ValidationError since the
// decoder has no sign handling to round-trip them.
func Encode(x *big.Int, radix int) (string, error) {
	if err := checkRadix(radix); err != nil {
		return "", err
	}
	if x == nil || x.Sign() < 0 {
		return "", apperrors.ValidationError{Field: "x", Message: "must be a non-negative integer"}
	}
	return x.Text(radix), nil
}

// DecodeUint64 is the fixed-width counterpart of Decode. It fails with
// apperrors.OverflowError when the value does not fit in 64 bits.
func DecodeUint64(digits string, radix int) (uint64, error) {
	if err := checkRadix(radix); err != nil {
		return 0, err
	}
	if err := checkDigits(digits, radix); err != nil {
		return 0, err
	}
	var acc uint64
	for _, r := range digits {
		v, _ := DigitValue(r)
		hi, lo := bits.Mul64(acc, uint64(radix))
		if hi != 0 {
			return 0, apperrors.OverflowError{Value: strings.ToLower(digits), Bits: 64}
		}
		sum, carry := bits.Add64(lo, uint64(v), 0)
		if carry != 0 {
			return 0, apperrors.OverflowError{Value: strings.ToLower(digits), Bits: 64}
		}
		acc = sum
	}
	return acc, nil
}
