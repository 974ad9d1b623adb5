// Package metrics defines the observability hooks for doclet ingestion and
// page generation, with a no-op default and a Prometheus implementation.
package metrics

import "time"

// Recorder defines observability hooks for ingestion and generation metrics.
// All methods must be cheap; the NoopRecorder allows optional injection.
type Recorder interface {
	AddDocletsIngested(n int)
	AddSkippedKinds(n int)
	IncPageRendered(category string)
	IncWriteFailure()
	ObserveGenerateDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) AddDocletsIngested(int)               {}
func (NoopRecorder) AddSkippedKinds(int)                  {}
func (NoopRecorder) IncPageRendered(string)               {}
func (NoopRecorder) IncWriteFailure()                     {}
func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
