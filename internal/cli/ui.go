//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polyroots/internal/format"
	"github.com/agbru/polyroots/internal/orchestration"
	"github.com/agbru/polyroots/internal/progress"
)

const (
	// DisplayEdges is the number of leading and trailing digits kept when a
	// long value is truncated in the terminal report.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// stageLabel names the stage of the most recent update for the spinner line.
func stageLabel(stage string, numTracks int) string {
	switch {
	case stage == "":
		return "Starting"
	case numTracks > 1:
		return "Avg progress (" + stage + ")"
	default:
		return "Progress (" + stage + ")"
	}
}

// DisplayProgress shows a spinner with the average progress of all tracks
// until progressChan is closed, then prints a final 100% line. It calls
// wg.Done on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTracks int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numTracks)
	if agg == nil {
		progress.Drain(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	stage := ""
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				spinnerStopped = true
				fmt.Fprintf(out, "Progress: %s\n", format.FormatProgressBarWithETA(1, 0, ProgressBarWidth))
				return
			}
			stage = agg.Update(update).Stage
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s: %s", stageLabel(stage, agg.NumTracks()),
				format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth)))
		}
	}
}
