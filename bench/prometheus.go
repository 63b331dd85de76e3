package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "memvec_bench"

// PrometheusCollector exports benchmark results as Prometheus metrics,
// labelled by op and buffer size.
type PrometheusCollector struct {
	baseline   *prometheus.GaugeVec
	vector     *prometheus.GaugeVec
	gain       *prometheus.GaugeVec
	throughput *prometheus.GaugeVec
	mismatches *prometheus.CounterVec
}

// NewPrometheusCollector creates the collector and registers its metrics
// with reg.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	labels := []string{"op", "size"}
	c := &PrometheusCollector{
		baseline: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "baseline_seconds",
			Help:      "Total time of the standard library loop.",
		}, labels),
		vector: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "memvec_seconds",
			Help:      "Total time of the memvec loop.",
		}, labels),
		gain: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "gain_percent",
			Help:      "Time saved by memvec relative to the baseline.",
		}, labels),
		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "memvec_bytes_per_second",
			Help:      "Bytes processed per second by memvec.",
		}, labels),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mismatches_total",
			Help:      "Measurements where memvec disagreed with the baseline.",
		}, []string{"op"}),
	}

	for _, col := range []prometheus.Collector{c.baseline, c.vector, c.gain, c.throughput, c.mismatches} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordResult implements MetricsCollector.
func (c *PrometheusCollector) RecordResult(r Result) {
	size := strconv.Itoa(r.Size)
	op := r.Op.String()
	c.baseline.WithLabelValues(op, size).Set(r.Baseline.Seconds())
	c.vector.WithLabelValues(op, size).Set(r.Vector.Seconds())
	c.gain.WithLabelValues(op, size).Set(r.Gain())
	c.throughput.WithLabelValues(op, size).Set(r.BytesPerSecond())
}

// RecordMismatch implements MetricsCollector.
func (c *PrometheusCollector) RecordMismatch(op Op, _ int) {
	c.mismatches.WithLabelValues(op.String()).Inc()
}
