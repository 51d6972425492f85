package orchestration

import (
	"time"

	"github.com/agbru/polyroots/internal/format"
	"github.com/agbru/polyroots/internal/progress"
)

// ProgressAggregator folds per-track updates into an overall fraction and an
// ETA. The CLI spinner uses it to render a single status line.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numTracks int
}

// NewProgressAggregator creates an aggregator for numTracks tracks. It
// returns nil if numTracks <= 0.
func NewProgressAggregator(numTracks int) *ProgressAggregator {
	if numTracks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numTracks),
		numTracks: numTracks,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	Index           int
	Stage           string
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.Index, update.Value)
	return AggregatedProgress{
		Index:           update.Index,
		Stage:           update.Stage,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumTracks returns the number of tracks being aggregated.
func (a *ProgressAggregator) NumTracks() int {
	return a.numTracks
}
