package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each Server owns its own
// registry so tests can build several servers in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	solveDuration prometheus.Histogram
	sessions      prometheus.Counter
}

// NewMetrics registers the collectors on a fresh registry. clients reports
// the number of connected WebSocket clients and may be nil.
func NewMetrics(clients func() int) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boggle",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template, method and status code.",
		}, []string{"route", "method", "code"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boggle",
			Name:      "word_submissions_total",
			Help:      "Submitted words by verdict.",
		}, []string{"verdict"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "boggle",
			Name:      "solve_duration_seconds",
			Help:      "Time spent enumerating every word on a board.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		sessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "boggle",
			Name:      "sessions_created_total",
			Help:      "Game sessions created through the API.",
		}),
	}

	if clients != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "boggle",
			Name:      "websocket_clients",
			Help:      "Connected WebSocket clients.",
		}, func() float64 { return float64(clients()) })
	}

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// middleware counts requests by their mux route template so session IDs do
// not explode label cardinality
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

