// Package metrics records run metrics for the polyroots pipeline on a private
// Prometheus registry and reads runtime memory statistics.
//
// A Recorder is created per run. Its metrics can be written to a node
// exporter textfile (WriteToTextfile) so batch runs can be scraped after the
// process exits.
package metrics
