// Package rootset decodes the (base, digit-string) pairs of an input document
// into an ordered set of integer roots and selects the prefix used to build
// the polynomial.
package rootset

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/radix"
)

// Encoded is one root as it appears in the input: a radix and the digits of
// the value in that radix, most-significant first.
type Encoded struct {
	ID     string
	Base   int
	Digits string
}

// Root is a decoded root together with the input entry it came from.
type Root struct {
	ID    string
	Value *big.Int
}

// RootSet is an ordered sequence of decoded roots. Order is the input order
// and determines which roots Select picks.
type RootSet struct {
	Roots []Root
}

// Decode decodes every entry in order. The first failure is returned wrapped
// with the entry ID; its domain kind (ErrInvalidRadix, ErrInvalidDigit)
// remains reachable through errors.Is.
func Decode(entries []Encoded) (RootSet, error) {
	roots := make([]Root, 0, len(entries))
	for _, e := range entries {
		v, err := radix.Decode(e.Digits, e.Base)
		if err != nil {
			return RootSet{}, apperrors.WrapError(err, "root %q", e.ID)
		}
		roots = append(roots, Root{ID: e.ID, Value: v})
	}
	return RootSet{Roots: roots}, nil
}

// Len returns the number of roots.
func (s RootSet) Len() int { return len(s.Roots) }

// Values returns copies of the root values in order.
func (s RootSet) Values() []*big.Int {
	out := make([]*big.Int, len(s.Roots))
	for i, r := range s.Roots {
		out[i] = new(big.Int).Set(r.Value)
	}
	return out
}

// Select returns copies of the first k roots. Asking for more roots than the
// set holds is an InsufficientRootsError; a negative k is a ValidationError.
func (s RootSet) Select(k int) ([]*big.Int, error) {
	if k < 0 {
		return nil, apperrors.ValidationError{
			Field:   "k",
			Message: fmt.Sprintf("must be non-negative, got %d", k),
		}
	}
	if k > len(s.Roots) {
		return nil, apperrors.InsufficientRootsError{Requested: k, Available: len(s.Roots)}
	}
	return s.Values()[:k], nil
}
