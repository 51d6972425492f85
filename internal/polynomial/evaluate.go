package polynomial

import "math/big"

// Evaluate computes p(x) exactly with Horner's method:
//
//	p(x) = (…((cₙ·x + cₙ₋₁)·x + cₙ₋₂)…)·x + c₀
//
// using n multiplications and n additions. A nil polynomial evaluates to 0.
func Evaluate(p *Polynomial, x *big.Int) *big.Int {
	if p == nil || len(p.coeffs) == 0 {
		return new(big.Int)
	}
	acc := new(big.Int).Set(p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}
	return acc
}

// EvaluatePowers computes Σ cᵢ·xⁱ by accumulating the running power xⁱ
// instead of nesting. It does about twice the multiplications of Evaluate
// and serves as an independent check of it.
func EvaluatePowers(p *Polynomial, x *big.Int) *big.Int {
	result := new(big.Int)
	if p == nil {
		return result
	}
	power := big.NewInt(1)
	term := new(big.Int)
	for i, c := range p.coeffs {
		term.Mul(c, power)
		result.Add(result, term)
		if i < len(p.coeffs)-1 {
			power.Mul(power, x)
		}
	}
	return result
}
