// Package polynomial implements integer polynomials for root-product
// construction: the monic polynomial ∏(x − rᵢ) built from known roots, and
// exact evaluation at arbitrary-precision points.
//
// Coefficients are stored constant term first (index i is the coefficient of
// xⁱ). All arithmetic uses math/big, so there is no overflow and no rounding;
// no floating-point value is ever involved. Polynomials are immutable once
// built and every accessor returns copies.
package polynomial
