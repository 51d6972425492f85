// Package validation re-evaluates a reconstructed polynomial at every
// supplied root and reports which used roots failed to vanish.
package validation

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/rootset"
)

// Entry is the value of the polynomial at one root.
type Entry struct {
	Root  *big.Int
	ID    string
	Value *big.Int
	// Used is true when the root was one of the k roots the polynomial was
	// built from. Unused roots are reported for information only.
	Used bool
}

// Zero reports whether the polynomial vanished at the root.
func (e Entry) Zero() bool { return e.Value.Sign() == 0 }

// Report holds one Entry per root, in root order.
type Report struct {
	Entries []Entry
	K       int
}

// Defects returns the used roots at which the polynomial is not zero. For a
// correct build this is always empty.
func (r Report) Defects() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Used && !e.Zero() {
			out = append(out, e)
		}
	}
	return out
}

// OK reports whether every used root evaluated to zero.
func (r Report) OK() bool { return len(r.Defects()) == 0 }

// ZeroCount returns the number of roots, used or not, at which the
// polynomial vanished.
func (r Report) ZeroCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Zero() {
			n++
		}
	}
	return n
}

// Equal reports whether two reports carry the same values for the same roots.
func (r Report) Equal(o Report) bool {
	if r.K != o.K || len(r.Entries) != len(o.Entries) {
		return false
	}
	for i := range r.Entries {
		if r.Entries[i].ID != o.Entries[i].ID || r.Entries[i].Value.Cmp(o.Entries[i].Value) != 0 {
			return false
		}
	}
	return true
}

// Validate evaluates p at every root of roots with ev. The first k roots are
// marked as used. The context is checked between evaluations.
func Validate(ctx context.Context, p *polynomial.Polynomial, roots rootset.RootSet, k int, ev polynomial.Evaluator) (Report, error) {
	if k < 0 || k > roots.Len() {
		return Report{}, apperrors.InsufficientRootsError{Requested: k, Available: roots.Len()}
	}
	entries := make([]Entry, 0, roots.Len())
	for i, r := range roots.Roots {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		x := new(big.Int).Set(r.Value)
		entries = append(entries, Entry{
			Root:  x,
			ID:    r.ID,
			Value: ev.Evaluate(p, x),
			Used:  i < k,
		})
	}
	return Report{Entries: entries, K: k}, nil
}
