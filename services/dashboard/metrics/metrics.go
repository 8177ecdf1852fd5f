package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload results used as the uploads_total label.
const (
	ResultOK             = "ok"
	ResultMalformed      = "malformed"
	ResultMissingColumns = "missing_columns"
	ResultTooLarge       = "too_large"
)

// Collector owns the dashboard metrics and the registry they are exported from.
type Collector struct {
	reg *prometheus.Registry

	Uploads     *prometheus.CounterVec // result label: ok|malformed|missing_columns|too_large
	RowsLoaded  prometheus.Counter
	RowsDropped prometheus.Counter

	RecomputeDuration prometheus.Histogram

	ActiveSessions prometheus.Gauge
}

// NewCollector registers every metric on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_uploads_total",
			Help: "Uploads received, by outcome.",
		}, []string{"result"}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_rows_loaded_total",
			Help: "Trip rows kept after timestamp parsing.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_rows_dropped_total",
			Help: "Trip rows dropped because a timestamp did not parse.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_recompute_duration_seconds",
			Help:    "Duration of a filter and aggregation pass.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Sessions currently holding a trip table.",
		}),
	}

	reg.MustRegister(c.Uploads, c.RowsLoaded, c.RowsDropped, c.RecomputeDuration, c.ActiveSessions)
	return c
}

// ObserveUpload records the outcome of one upload.
func (c *Collector) ObserveUpload(result string, loaded, dropped int) {
	c.Uploads.WithLabelValues(result).Inc()
	c.RowsLoaded.Add(float64(loaded))
	c.RowsDropped.Add(float64(dropped))
}

// ObserveRecompute records how long a recomputation took.
func (c *Collector) ObserveRecompute(d time.Duration) {
	c.RecomputeDuration.Observe(d.Seconds())
}

// SetActiveSessions implements store.Observer.
func (c *Collector) SetActiveSessions(n int) {
	c.ActiveSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
