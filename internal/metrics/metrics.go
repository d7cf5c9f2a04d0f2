// Package metrics exposes Prometheus collectors for sheet fetches and
// filter evaluations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lostfound-tw/lostfound/internal/sheet"
)

const namespace = "lostfound"

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry prometheus.Gatherer

	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	records       prometheus.Gauge
	evaluations   prometheus.Counter
	matched       prometheus.Histogram
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fetches: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "fetches_total",
			Help:      "Sheet fetch attempts by outcome",
		}, []string{"outcome"}),
		fetchDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and mapping the sheet",
			Buckets:   prometheus.DefBuckets,
		}),
		records: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "records",
			Help:      "Records in the current collection",
		}),
		evaluations: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "evaluations_total",
			Help:      "Filter evaluations performed",
		}),
		matched: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "matched_records",
			Help:      "Records matched per evaluation",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}
}

// Outcome classifies a fetch error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case sheet.IsTransport(err):
		return OutcomeTransport
	case sheet.IsMalformed(err):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}

// ObserveFetch records one load attempt.
func (m *Metrics) ObserveFetch(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(Outcome(err)).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

// SetRecords sets the size of the current collection.
func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

// ObserveEvaluation records one filter evaluation that matched n records.
func (m *Metrics) ObserveEvaluation(n int) {
	if m == nil {
		return
	}
	m.evaluations.Inc()
	m.matched.Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
