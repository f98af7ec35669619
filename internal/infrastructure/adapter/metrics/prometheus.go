package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collects HTTP and withdrawal workflow metrics on its own registry
type Prometheus struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	withdrawalsCreated  prometheus.Counter
	withdrawalsReviewed *prometheus.CounterVec
}

var _ core.Metrics = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
		withdrawalsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "withdrawals_requested_total",
				Help: "Total number of accepted withdrawal requests.",
			},
		),
		withdrawalsReviewed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawal_reviews_total",
				Help: "Total number of withdrawal reviews by resulting status.",
			},
			[]string{"status"},
		),
	}

	p.registry.MustRegister(
		p.httpRequests,
		p.httpDuration,
		p.withdrawalsCreated,
		p.withdrawalsReviewed,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return p
}

// RegisterDBStats exposes connection pool statistics of db
func (p *Prometheus) RegisterDBStats(db *sql.DB, dbName string) error {
	return p.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Registry returns the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler returns an HTTP handler exposing the registered metrics
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled HTTP request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (p *Prometheus) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)

	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// WithdrawalRequested counts an accepted withdrawal request
func (p *Prometheus) WithdrawalRequested() {
	p.withdrawalsCreated.Inc()
}

// WithdrawalReviewed counts a review outcome
func (p *Prometheus) WithdrawalReviewed(status string) {
	p.withdrawalsReviewed.WithLabelValues(status).Inc()
}
