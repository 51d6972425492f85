package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenCase represents a single test case in the golden file.
type GoldenCase struct {
	Name         string   `json:"name"`
	Roots        []string `json:"roots"`
	Coefficients []string `json:"coefficients"`
}

func main() {
	outputDir := flag.String("out", "internal/polynomial/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Println("Generating golden data...")

	var data []GoldenCase
	for _, c := range goldenInputs() {
		coeffs := productTree(c.roots)
		data = append(data, GoldenCase{
			Name:         c.name,
			Roots:        toStrings(c.roots),
			Coefficients: toStrings(coeffs),
		})
		fmt.Printf("Generated %s (degree %d)\n", c.name, len(c.roots))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

type goldenInput struct {
	name  string
	roots []*big.Int
}

// goldenInputs lists the cases written to the golden file. Small cases are
// easy to check by hand; the larger ones exercise multi-word coefficients.
func goldenInputs() []goldenInput {
	mixedRadix := []string{
		"995085094601491",
		"21394886326566393",
		"196563650089608567",
		"1016509518118225951",
		"3711974121218449851",
		"10788619898233492461",
		"26709394976508342463",
	}
	powers := make([]*big.Int, 20)
	for i := range powers {
		powers[i] = new(big.Int).Lsh(big.NewInt(1), uint(i+1))
	}
	consecutive := make([]*big.Int, 30)
	for i := range consecutive {
		consecutive[i] = big.NewInt(int64(i + 1))
	}
	return []goldenInput{
		{"empty", nil},
		{"single", parse("42")},
		{"scenario", parse("2", "3")},
		{"sample", parse("4", "7", "12", "39")},
		{"repeated", parse("5", "5", "5")},
		{"mixed-sign", parse("-3", "0", "3", "11")},
		{"mixed-radix", parse(mixedRadix...)},
		{"powers-of-two", powers},
		{"consecutive", consecutive},
	}
}

func parse(values ...string) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i], _ = new(big.Int).SetString(v, 10)
	}
	return out
}

func toStrings(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// productTree computes ∏(x − rᵢ) by splitting the roots in half and
// multiplying the two halves with schoolbook convolution. It shares no code
// with the linear fold used by the polynomial package and serves as our
// "Oracle". Coefficients are returned constant term first.
func productTree(roots []*big.Int) []*big.Int {
	switch len(roots) {
	case 0:
		return []*big.Int{big.NewInt(1)}
	case 1:
		return []*big.Int{new(big.Int).Neg(roots[0]), big.NewInt(1)}
	}
	mid := len(roots) / 2
	return convolve(productTree(roots[:mid]), productTree(roots[mid:]))
}

// convolve multiplies two coefficient vectors.
func convolve(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	term := new(big.Int)
	for i, x := range a {
		for j, y := range b {
			term.Mul(x, y)
			out[i+j].Add(out[i+j], term)
		}
	}
	return out
}
