package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced from very slow progress rates.
const maxETA = 24 * time.Hour

// etaSmoothing is the weight of the newest rate sample in the moving average.
const etaSmoothing = 0.3

// ProgressState tracks the progress of several concurrent tracks (pipeline
// stages or evaluators), each in [0, 1].
type ProgressState struct {
	progresses []float64
	numTracks  int
}

// NewProgressState creates a state for n tracks. A non-positive n yields an
// empty state whose average is always zero.
func NewProgressState(n int) *ProgressState {
	if n < 0 {
		n = 0
	}
	return &ProgressState{progresses: make([]float64, n), numTracks: n}
}

// Update records the progress of track i. Out-of-range indices are ignored and
// values are clamped to [0, 1].
func (ps *ProgressState) Update(i int, value float64) {
	if i < 0 || i >= ps.numTracks {
		return
	}
	ps.progresses[i] = clamp01(value)
}

// CalculateAverage returns the mean progress across all tracks.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numTracks == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numTracks)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate used to
// estimate the time remaining.
type ProgressWithETA struct {
	*ProgressState
	numTracks    int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second
}

// NewProgressWithETA creates an ETA-aware state for n tracks.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		numTracks:     n,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records an update and returns the new average and ETA.
func (p *ProgressWithETA) UpdateWithETA(i int, value float64) (float64, time.Duration) {
	p.Update(i, value)
	avg := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate).Seconds(); elapsed > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = etaSmoothing*rate + (1-etaSmoothing)*p.progressRate
		}
		p.lastProgress = avg
		p.lastUpdate = now
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, or zero while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	secs := remaining / p.progressRate
	if secs > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(secs * float64(time.Second))
}

// ProgressBar renders a bar of length cells for progress in [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = clamp01(progress)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "  50.00% [█████░░░░░] ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	progress = clamp01(progress)
	etaText := FormatETA(eta)
	if progress >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", progress*100, ProgressBar(progress, width), etaText)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
