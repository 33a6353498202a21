package sisapp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordLoad is called after a corpus load attempt.
	RecordLoad(records int, duration time.Duration, err error)

	// RecordFilter is called after each filter evaluation.
	RecordFilter(matched int, duration time.Duration)

	// RecordExport is called after each export.
	RecordExport(format string, count int, err error)

	// RecordRender is called after each word-cloud rendering attempt.
	RecordRender(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFilter(int, time.Duration)      {}
func (NoopMetricsCollector) RecordExport(string, int, error)      {}
func (NoopMetricsCollector) RecordRender(time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadTotalNanos   atomic.Int64
	FilterCount      atomic.Int64
	FilterTotalNanos atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	RenderCount      atomic.Int64
	RenderErrors     atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(matched int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(format string, count int, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// RecordRender implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRender(duration time.Duration, err error) {
	b.RenderCount.Add(1)
	if err != nil {
		b.RenderErrors.Add(1)
	}
}
