package polynomial

import (
	"context"
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func toBig(vs []int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

// TestBuild_RootsAreZeros_PropertyBased checks that every input root is a
// zero of the built polynomial, for both evaluators.
func TestBuild_RootsAreZeros_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("p(rᵢ) = 0 for every root", prop.ForAll(
		func(raw []int64) bool {
			roots := toBig(raw)
			p := Build(roots)
			if p.Degree() != len(roots) || !p.IsMonic() {
				return false
			}
			for _, r := range roots {
				if Evaluate(p, r).Sign() != 0 || EvaluatePowers(p, r).Sign() != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(12, gen.Int64Range(-1_000_000_000, 1_000_000_000)),
	))

	properties.TestingRun(t)
}

// TestBuild_OrderInvariance_PropertyBased checks that permuting the roots
// does not change the product.
func TestBuild_OrderInvariance_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Build is independent of root order", prop.ForAll(
		func(raw []int64, seed int64) bool {
			roots := toBig(raw)
			shuffled := make([]*big.Int, len(roots))
			copy(shuffled, roots)
			rng := rand.New(rand.NewSource(seed))
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			return Build(roots).Equal(Build(shuffled))
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestEvaluators_Agree_PropertyBased compares Horner and running-power
// evaluation on random polynomials and points.
func TestEvaluators_Agree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Evaluate equals EvaluatePowers", prop.ForAll(
		func(coeffs []int64, x int64) bool {
			p := FromCoefficients(toBig(coeffs))
			bx := big.NewInt(x)
			return Evaluate(p, bx).Cmp(EvaluatePowers(p, bx)) == 0
		},
		gen.SliceOf(gen.Int64()),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestFromRoots_ParallelEquivalence_PropertyBased checks that the
// concurrent step produces the same coefficients as the sequential one.
func TestFromRoots_ParallelEquivalence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("parallel build equals sequential build", prop.ForAll(
		func(raw []int64) bool {
			roots := toBig(raw)
			seq, err := FromRoots(context.Background(), roots, BuildOptions{})
			if err != nil {
				return false
			}
			par, err := FromRoots(context.Background(), roots, BuildOptions{ParallelThreshold: 1})
			if err != nil {
				return false
			}
			return seq.Equal(par)
		},
		gen.SliceOfN(40, gen.Int64()),
	))

	properties.TestingRun(t)
}
