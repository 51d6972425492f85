package orchestration

import (
	"github.com/agbru/polyroots/internal/polynomial"
)

// GetEvaluatorsToRun resolves the -eval selection. "all" returns every
// registered evaluator in alphabetical order of its registration name;
// any other value returns that evaluator alone, or nil if it is unknown.
func GetEvaluatorsToRun(selection string, factory polynomial.EvaluatorFactory) []polynomial.Evaluator {
	if selection == "all" {
		names := factory.List()
		evaluators := make([]polynomial.Evaluator, 0, len(names))
		for _, name := range names {
			if ev, err := factory.Get(name); err == nil {
				evaluators = append(evaluators, ev)
			}
		}
		return evaluators
	}
	if ev, err := factory.Get(selection); err == nil {
		return []polynomial.Evaluator{ev}
	}
	return nil
}
