package polynomial

import (
	"fmt"
	"math/big"
	"strings"
)

// Polynomial is an immutable univariate polynomial with arbitrary-precision
// integer coefficients.
//
// Coefficient convention: index i holds the coefficient of xⁱ. Index 0 is
// the constant term and the last index is the leading term. Construction,
// evaluation and every report in this module use this order.
type Polynomial struct {
	coeffs []*big.Int
}

// New returns the zero polynomial with degree+1 zero coefficients.
// It exists so callers can size a coefficient vector up front; the zero
// polynomial itself has no nonzero leading term.
func New(degree int) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("polynomial degree cannot be negative: %d", degree)
	}
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// FromCoefficients builds a polynomial from coefficients given constant term
// first. The input is deep-copied; nil entries are read as zero. An empty
// slice yields the zero constant.
func FromCoefficients(coeffs []*big.Int) *Polynomial {
	if len(coeffs) == 0 {
		return &Polynomial{coeffs: []*big.Int{new(big.Int)}}
	}
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Int)
		if c != nil {
			out[i].Set(c)
		}
	}
	return &Polynomial{coeffs: out}
}

// FromInt64s is a convenience constructor for small literal coefficients,
// constant term first.
func FromInt64s(coeffs ...int64) *Polynomial {
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = big.NewInt(c)
	}
	if len(out) == 0 {
		out = []*big.Int{new(big.Int)}
	}
	return &Polynomial{coeffs: out}
}

// Degree returns the length of the coefficient vector minus one.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Len returns the number of coefficients (Degree()+1).
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Coeff returns a copy of the coefficient of xⁱ. Indices outside the vector
// read as zero.
func (p *Polynomial) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Coefficients returns a deep copy of the coefficient vector, constant term
// first.
func (p *Polynomial) Coefficients() []*big.Int {
	out := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Leading returns a copy of the highest-index coefficient.
func (p *Polynomial) Leading() *big.Int {
	return p.Coeff(len(p.coeffs) - 1)
}

// IsMonic reports whether the leading coefficient is exactly one.
func (p *Polynomial) IsMonic() bool {
	return p.coeffs[len(p.coeffs)-1].Cmp(bigOne) == 0
}

// Equal reports whether p and q have identical coefficient vectors.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// MaxBitLen returns the largest coefficient bit length.
func (p *Polynomial) MaxBitLen() int {
	maxBits := 0
	for _, c := range p.coeffs {
		if b := c.BitLen(); b > maxBits {
			maxBits = b
		}
	}
	return maxBits
}

// String renders p in conventional descending form, e.g. "x^2 - 5x + 6".
func (p *Polynomial) String() string {
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(c)
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if i == 0 || abs.Cmp(bigOne) != 0 {
			sb.WriteString(abs.String())
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

var bigOne = big.NewInt(1)
