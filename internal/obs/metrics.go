package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics — счётчики и гистограммы поискового сервиса.
type Metrics struct {
	SearchesTotal       prometheus.Counter
	ProfileLookupsTotal prometheus.Counter
	RatingRefreshTotal  prometheus.Counter

	SearchCandidates    prometheus.Histogram
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec

	Registry *prometheus.Registry
}

// NewMetrics создаёт и регистрирует коллекторы Prometheus.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sitter_searches_total",
			Help: "Total number of sitter search requests",
		}),
		ProfileLookupsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sitter_profile_lookups_total",
			Help: "Total number of sitter profile lookups",
		}),
		RatingRefreshTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rating_snapshot_refreshes_total",
			Help: "Completed rating snapshot refreshes",
		}),
		SearchCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sitter_search_candidates",
			Help:    "Candidate set size after filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.ProfileLookupsTotal,
		m.RatingRefreshTotal,
		m.SearchCandidates,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncSearches()       { m.SearchesTotal.Inc() }
func (m *Metrics) IncProfileLookups() { m.ProfileLookupsTotal.Inc() }
func (m *Metrics) IncRatingRefresh()  { m.RatingRefreshTotal.Inc() }

func (m *Metrics) ObserveCandidates(n int) {
	m.SearchCandidates.Observe(float64(n))
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
