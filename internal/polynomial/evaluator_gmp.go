//go:build gmp

// This file provides a GMP-backed Horner evaluator, conditionally compiled
// with the "gmp" build tag:
//   - Default builds use math/big only.
//   - GMP support is opt-in: go build -tags=gmp
//   - Requires libgmp (libgmp-dev on Debian/Ubuntu, brew install gmp on macOS).

package polynomial

import (
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	builtinEvaluators["gmp"] = func() Evaluator { return GMPEvaluator{} }
}

// GMPEvaluator runs Horner's method on GMP integers. Coefficients are
// converted once per call, so it only pays off for high degrees or very
// large roots where GMP's multiplication outruns math/big.
type GMPEvaluator struct{}

// Name returns the name of the method.
func (GMPEvaluator) Name() string { return "GMP Horner" }

// Evaluate returns p(x).
func (GMPEvaluator) Evaluate(p *Polynomial, x *big.Int) *big.Int {
	if p == nil || len(p.coeffs) == 0 {
		return new(big.Int)
	}
	gx := toGMP(x)
	acc := toGMP(p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc.Mul(acc, gx)
		acc.Add(acc, toGMP(p.coeffs[i]))
	}
	return fromGMP(acc)
}

// toGMP converts a math/big integer through its magnitude bytes and sign.
func toGMP(v *big.Int) *gmp.Int {
	g := new(gmp.Int).SetBytes(v.Bytes())
	if v.Sign() < 0 {
		g.Neg(g)
	}
	return g
}

// fromGMP is the inverse of toGMP.
func fromGMP(g *gmp.Int) *big.Int {
	v := new(big.Int).SetBytes(g.Bytes())
	if g.Sign() < 0 {
		v.Neg(v)
	}
	return v
}
