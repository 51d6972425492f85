package radix

import (
	"math/big"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// horner evaluates digit values most-significant first with plain big.Int
// arithmetic, independently of big.Int.SetString.
func horner(values []int, radix int) *big.Int {
	acc := new(big.Int)
	b := big.NewInt(int64(radix))
	for _, v := range values {
		acc.Mul(acc, b)
		acc.Add(acc, big.NewInt(int64(v)))
	}
	return acc
}

// TestDecode_MatchesPositionalValue_PropertyBased checks Decode against the
// positional definition Σ dᵢ·bⁱ for random radices and digit sequences,
// with random letter case.
func TestDecode_MatchesPositionalValue_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Decode equals the positional value", prop.ForAll(
		func(radix int, raw []int, upper bool) bool {
			if len(raw) == 0 {
				raw = []int{0}
			}
			values := make([]int, len(raw))
			var sb strings.Builder
			for i, r := range raw {
				values[i] = r % radix
				sb.WriteString(big.NewInt(int64(values[i])).Text(radix))
			}
			digits := sb.String()
			if upper {
				digits = strings.ToUpper(digits)
			}
			got, err := Decode(digits, radix)
			if err != nil {
				t.Logf("Decode(%q, %d) error: %v", digits, radix, err)
				return false
			}
			return got.Cmp(horner(values, radix)) == 0
		},
		gen.IntRange(MinRadix, MaxRadix),
		gen.SliceOf(gen.IntRange(0, MaxRadix-1)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestDecodeEncode_RoundTrip_PropertyBased verifies that re-encoding a
// decoded value and decoding again is idempotent.
func TestDecodeEncode_RoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Decode(Encode(Decode(s))) == Decode(s)", prop.ForAll(
		func(radix int, hi, lo uint64) bool {
			x := new(big.Int).SetUint64(hi)
			x.Lsh(x, 64).Or(x, new(big.Int).SetUint64(lo))
			s := x.Text(radix)

			first, err := Decode(s, radix)
			if err != nil {
				return false
			}
			enc, err := Encode(first, radix)
			if err != nil {
				return false
			}
			second, err := Decode(enc, radix)
			if err != nil {
				return false
			}
			return first.Cmp(second) == 0 && first.Cmp(x) == 0
		},
		gen.IntRange(MinRadix, MaxRadix),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestDecodeUint64_AgreesWithDecode_PropertyBased checks the fixed-width
// path against the arbitrary-precision one whenever the value fits.
func TestDecodeUint64_AgreesWithDecode_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("DecodeUint64 agrees with Decode", prop.ForAll(
		func(radix int, v uint64) bool {
			s := new(big.Int).SetUint64(v).Text(radix)
			got, err := DecodeUint64(s, radix)
			if err != nil {
				return false
			}
			want, err := Decode(s, radix)
			if err != nil {
				return false
			}
			return want.IsUint64() && want.Uint64() == got
		},
		gen.IntRange(MinRadix, MaxRadix),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
