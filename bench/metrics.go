package bench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to integrate with monitoring systems; see
// PrometheusCollector for a ready-made adapter.
type MetricsCollector interface {
	// RecordResult is called after each verified measurement.
	RecordResult(r Result)

	// RecordMismatch is called when memvec and the baseline disagree.
	RecordMismatch(op Op, size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResult(Result)    {}
func (NoopMetricsCollector) RecordMismatch(Op, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResultCount    atomic.Int64
	MismatchCount  atomic.Int64
	BytesProcessed atomic.Int64
	BaselineNanos  atomic.Int64
	VectorNanos    atomic.Int64
}

// RecordResult implements MetricsCollector.
func (c *BasicMetricsCollector) RecordResult(r Result) {
	c.ResultCount.Add(1)
	c.BytesProcessed.Add(int64(r.Size) * int64(r.Iterations))
	c.BaselineNanos.Add(r.Baseline.Nanoseconds())
	c.VectorNanos.Add(r.Vector.Nanoseconds())
}

// RecordMismatch implements MetricsCollector.
func (c *BasicMetricsCollector) RecordMismatch(Op, int) {
	c.MismatchCount.Add(1)
}

// Stats returns a snapshot of the collected metrics.
func (c *BasicMetricsCollector) Stats() MetricsStats {
	return MetricsStats{
		Results:        c.ResultCount.Load(),
		Mismatches:     c.MismatchCount.Load(),
		BytesProcessed: c.BytesProcessed.Load(),
		Baseline:       time.Duration(c.BaselineNanos.Load()),
		Vector:         time.Duration(c.VectorNanos.Load()),
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	Results        int64
	Mismatches     int64
	BytesProcessed int64
	Baseline       time.Duration
	Vector         time.Duration
}

// Gain returns the aggregate gain over all recorded results, in percent.
func (s MetricsStats) Gain() float64 {
	return gain(s.Baseline, s.Vector)
}
