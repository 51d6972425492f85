package cli

import (
	"context"
	"os"
	"testing"

	"github.com/agbru/polyroots/internal/input"
	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/polynomial"
	"github.com/agbru/polyroots/internal/rootset"
	"github.com/agbru/polyroots/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

// sampleOutcome runs the pipeline on roots 4, 7, 12, 39 with k = 3, so
// p(x) = x³ - 23x² + 160x - 336 and p(39) = 30240.
func sampleOutcome(t *testing.T) orchestration.Outcome {
	t.Helper()
	doc := input.Document{
		Source: "sample.json",
		N:      4,
		K:      3,
		Entries: []rootset.Encoded{
			{ID: "1", Base: 10, Digits: "4"},
			{ID: "2", Base: 2, Digits: "111"},
			{ID: "3", Base: 10, Digits: "12"},
			{ID: "6", Base: 4, Digits: "213"},
		},
	}
	outcome, err := orchestration.Run(context.Background(), doc, orchestration.Options{
		K:          orchestration.UseDocumentK,
		Evaluators: []polynomial.Evaluator{polynomial.HornerEvaluator{}, polynomial.PowerEvaluator{}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return outcome
}
