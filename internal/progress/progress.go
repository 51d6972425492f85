// Package progress defines the progress messages exchanged between the
// pipeline and its displays.
package progress

// ProgressUpdate reports the completion of one pipeline track.
type ProgressUpdate struct {
	// Index identifies the track: 0 is the polynomial build, 1..n are the
	// evaluators in run order.
	Index int
	// Stage is a short label for the track, e.g. "build" or "horner".
	Stage string
	// Value is the completed fraction in [0, 1].
	Value float64
}

// Sender returns a callback that forwards progress values for one track to
// ch. Sends never block: when the channel is full the update is dropped, as a
// later one supersedes it. A nil channel yields a no-op callback.
func Sender(ch chan<- ProgressUpdate, index int, stage string) func(float64) {
	if ch == nil {
		return func(float64) {}
	}
	return func(v float64) {
		select {
		case ch <- ProgressUpdate{Index: index, Stage: stage, Value: v}:
		default:
		}
	}
}

// Drain discards every update until ch is closed.
func Drain(ch <-chan ProgressUpdate) {
	for range ch {
	}
}
