package polynomial

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelCoefficients is the smallest coefficient vector worth splitting
// across goroutines within one linear-factor step.
const minParallelCoefficients = 16

// ProgressFunc receives the fraction of linear factors folded so far (0.0 to 1.0).
type ProgressFunc func(progress float64)

// BuildOptions tunes FromRoots. The zero value builds sequentially without
// progress reporting.
type BuildOptions struct {
	// ParallelThreshold is the coefficient bit length from which the
	// coefficient updates of a single step are computed concurrently.
	// Zero disables parallelism.
	ParallelThreshold int
	// Progress, if set, is called after every folded root.
	Progress ProgressFunc
}

// Build returns the monic polynomial ∏(x − rᵢ) for the given roots,
// folding them strictly left to right. Build([]) is the constant 1.
func Build(roots []*big.Int) *Polynomial {
	// Background context and no parallelism: FromRoots cannot fail.
	p, _ := FromRoots(context.Background(), roots, BuildOptions{})
	return p
}

// FromRoots builds ∏(x − rᵢ) starting from P₀ = 1. Each step multiplies the
// running polynomial by (x − rᵢ):
//
//	new[j] = prev[j−1] − rᵢ·prev[j]   (out-of-range terms are zero)
//
// The fold is sequential; within a step the coefficient updates are
// independent and are spread over GOMAXPROCS goroutines once the running
// coefficients exceed opts.ParallelThreshold bits. Duplicate roots are kept
// as repeated factors. The context is checked between steps.
func FromRoots(ctx context.Context, roots []*big.Int, opts BuildOptions) (*Polynomial, error) {
	coeffs := []*big.Int{big.NewInt(1)}
	maxBits := 1
	total := float64(len(roots))

	for i, r := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		negR := new(big.Int)
		if r != nil {
			negR.Neg(r)
		}

		parallel := opts.ParallelThreshold > 0 &&
			maxBits+negR.BitLen() >= opts.ParallelThreshold &&
			len(coeffs) >= minParallelCoefficients
		var err error
		if parallel {
			coeffs, err = mulLinearParallel(ctx, coeffs, negR)
			if err != nil {
				return nil, err
			}
		} else {
			coeffs = mulLinear(coeffs, negR)
		}

		maxBits = 0
		for _, c := range coeffs {
			if b := c.BitLen(); b > maxBits {
				maxBits = b
			}
		}
		if opts.Progress != nil {
			opts.Progress(float64(i+1) / total)
		}
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// mulLinear returns prev·(x + negR) as a fresh vector one entry longer.
func mulLinear(prev []*big.Int, negR *big.Int) []*big.Int {
	next := make([]*big.Int, len(prev)+1)
	for j := range next {
		next[j] = linearTerm(prev, j, negR)
	}
	return next
}

// mulLinearParallel computes the same vector as mulLinear with the index
// range split into contiguous chunks, one goroutine per chunk. Each chunk
// writes only its own slots of next and reads prev and negR, which are not
// mutated during the step.
func mulLinearParallel(ctx context.Context, prev []*big.Int, negR *big.Int) ([]*big.Int, error) {
	next := make([]*big.Int, len(prev)+1)
	workers := runtime.GOMAXPROCS(0)
	if workers > len(next) {
		workers = len(next)
	}
	chunk := (len(next) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(next); start += chunk {
		lo, hi := start, min(start+chunk, len(next))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := lo; j < hi; j++ {
				next[j] = linearTerm(prev, j, negR)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// linearTerm computes prev[j−1] + negR·prev[j] as a new value.
func linearTerm(prev []*big.Int, j int, negR *big.Int) *big.Int {
	v := new(big.Int)
	if j < len(prev) {
		v.Mul(negR, prev[j])
	}
	if j > 0 {
		v.Add(v, prev[j-1])
	}
	return v
}
