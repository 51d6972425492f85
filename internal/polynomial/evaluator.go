//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

package polynomial

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Evaluator computes the exact value of a polynomial at a point.
// Implementations must not mutate p or x.
type Evaluator interface {
	// Name returns a human-readable description of the method.
	Name() string
	// Evaluate returns p(x) as a fresh value.
	Evaluate(p *Polynomial, x *big.Int) *big.Int
}

// HornerEvaluator evaluates with nested multiplication (see Evaluate).
type HornerEvaluator struct{}

// Name returns the name of the method.
func (HornerEvaluator) Name() string { return "Horner (n mul, n add)" }

// Evaluate returns p(x).
func (HornerEvaluator) Evaluate(p *Polynomial, x *big.Int) *big.Int { return Evaluate(p, x) }

// PowerEvaluator evaluates with a running power (see EvaluatePowers).
type PowerEvaluator struct{}

// Name returns the name of the method.
func (PowerEvaluator) Name() string { return "Running power (2n mul, n add)" }

// Evaluate returns p(x).
func (PowerEvaluator) Evaluate(p *Polynomial, x *big.Int) *big.Int { return EvaluatePowers(p, x) }

// builtinEvaluators lists the evaluators compiled into the binary. Files
// guarded by build tags add to it from init; it is not modified afterwards.
var builtinEvaluators = map[string]func() Evaluator{
	"horner": func() Evaluator { return HornerEvaluator{} },
	"powers": func() Evaluator { return PowerEvaluator{} },
}

// EvaluatorFactory resolves evaluator names to implementations.
type EvaluatorFactory interface {
	// Get returns the evaluator registered under name.
	Get(name string) (Evaluator, error)
	// List returns the sorted registered names.
	List() []string
	// GetAll returns every registered evaluator keyed by name.
	GetAll() map[string]Evaluator
	// Register adds or replaces an evaluator.
	Register(name string, creator func() Evaluator)
}

// DefaultFactory is a thread-safe EvaluatorFactory that caches instances.
type DefaultFactory struct {
	mu         sync.RWMutex
	creators   map[string]func() Evaluator
	evaluators map[string]Evaluator
}

// NewDefaultFactory creates a factory with the built-in evaluators
// registered: "horner", "powers", and "gmp" when built with -tags=gmp.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:   make(map[string]func() Evaluator, len(builtinEvaluators)),
		evaluators: make(map[string]Evaluator),
	}
	for name, creator := range builtinEvaluators {
		f.creators[name] = creator
	}
	return f
}

// Register adds a new evaluator. An existing registration under the same
// name is replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() Evaluator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.evaluators, name)
}

// Get returns the evaluator registered under name, creating and caching it
// on first use.
func (f *DefaultFactory) Get(name string) (Evaluator, error) {
	f.mu.RLock()
	if ev, ok := f.evaluators[name]; ok {
		f.mu.RUnlock()
		return ev, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if ev, ok := f.evaluators[name]; ok {
		return ev, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator: %s", name)
	}
	ev := creator()
	f.evaluators[name] = ev
	return ev, nil
}

// List returns the registered evaluator names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered evaluator.
func (f *DefaultFactory) GetAll() map[string]Evaluator {
	all := make(map[string]Evaluator)
	for _, name := range f.List() {
		if ev, err := f.Get(name); err == nil {
			all[name] = ev
		}
	}
	return all
}
