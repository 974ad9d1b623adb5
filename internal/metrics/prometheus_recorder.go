package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder forwards Recorder hooks to Prometheus collectors.
type PrometheusRecorder struct {
	registry         *prometheus.Registry
	docletsIngested  prometheus.Counter
	skippedKinds     prometheus.Counter
	pagesRendered    *prometheus.CounterVec
	writeFailures    prometheus.Counter
	generateDuration prometheus.Histogram
}

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	r := &PrometheusRecorder{
		registry: reg,
		docletsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "symdoc_doclets_ingested_total",
			Help: "Doclets filed into the symbol graph.",
		}),
		skippedKinds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "symdoc_doclets_skipped_total",
			Help: "Doclets dropped for unrecognized kinds.",
		}),
		pagesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "symdoc_pages_rendered_total",
			Help: "Pages rendered, by page category.",
		}, []string{"category"}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "symdoc_write_failures_total",
			Help: "Output files that failed to write.",
		}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "symdoc_generate_duration_seconds",
			Help:    "End-to-end site generation duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.docletsIngested, r.skippedKinds, r.pagesRendered, r.writeFailures, r.generateDuration)
	return r
}

func (r *PrometheusRecorder) AddDocletsIngested(n int) { r.docletsIngested.Add(float64(n)) }
func (r *PrometheusRecorder) AddSkippedKinds(n int)    { r.skippedKinds.Add(float64(n)) }
func (r *PrometheusRecorder) IncPageRendered(category string) {
	r.pagesRendered.WithLabelValues(category).Inc()
}
func (r *PrometheusRecorder) IncWriteFailure() { r.writeFailures.Inc() }
func (r *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	r.generateDuration.Observe(d.Seconds())
}

// Handler exposes the recorder's registry for a /metrics endpoint.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
