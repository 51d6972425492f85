package polynomial

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"
)

// GoldenCase represents the structure of our golden file entries.
type GoldenCase struct {
	Name         string   `json:"name"`
	Roots        []string `json:"roots"`
	Coefficients []string `json:"coefficients"`
}

func loadGolden(t *testing.T) []GoldenCase {
	t.Helper()
	goldenPath := filepath.Join("testdata", "golden.json")
	file, err := os.Open(goldenPath)
	if err != nil {
		t.Fatalf("Failed to open golden file: %v. Did you run 'go run ./cmd/generate-golden'?", err)
	}
	defer file.Close()

	var cases []GoldenCase
	if err := json.NewDecoder(file).Decode(&cases); err != nil {
		t.Fatalf("Failed to decode golden file: %v", err)
	}
	return cases
}

func parseAll(t *testing.T, values []string) []*big.Int {
	t.Helper()
	out := make([]*big.Int, len(values))
	for i, v := range values {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			t.Fatalf("invalid golden integer %q", v)
		}
		out[i] = n
	}
	return out
}

func TestFromRootsAgainstGoldenFile(t *testing.T) {
	cases := loadGolden(t)

	variants := map[string]BuildOptions{
		"Sequential": {},
		"Parallel":   {ParallelThreshold: 1},
	}

	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.Name, func(t *testing.T) {
					t.Parallel()
					roots := parseAll(t, tc.Roots)
					want := FromCoefficients(parseAll(t, tc.Coefficients))

					got, err := FromRoots(context.Background(), roots, opts)
					if err != nil {
						t.Fatalf("FromRoots failed for %s: %v", tc.Name, err)
					}
					if !got.Equal(want) {
						t.Errorf("Mismatch for %s.\nExpected: %v\nGot:      %v", tc.Name, want.Coefficients(), got.Coefficients())
					}

					factory := NewDefaultFactory()
					for _, evName := range factory.List() {
						ev, _ := factory.Get(evName)
						for _, r := range roots {
							if v := ev.Evaluate(got, r); v.Sign() != 0 {
								t.Errorf("%s: %s(root %s) = %s, want 0", tc.Name, evName, r, v)
							}
						}
					}
				})
			}
		})
	}
}
