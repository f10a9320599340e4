package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
)

// OtherPath is the label used for paths outside the route table.
const OtherPath = "other"

// Metrics holds the selfcare Prometheus collectors.
type Metrics struct {
	gatherer        prometheus.Gatherer
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	fixtureLoads    *prometheus.CounterVec
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "selfcare",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "selfcare",
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "selfcare",
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests in flight",
			},
		),
		fixtureLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "selfcare",
				Name:      "fixture_loads_total",
				Help:      "Fixture document loads by result",
			},
			[]string{"result"},
		),
	}
	for _, collector := range []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.inFlight,
		m.fixtureLoads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware records request counts and latency. pathLabel must map paths onto
// a bounded set; nil labels every request as OtherPath.
func (m *Metrics) Middleware(pathLabel func(string) string) httpx.Middleware {
	if pathLabel == nil {
		pathLabel = func(string) string { return OtherPath }
	}
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			started := time.Now()
			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r)

			path := pathLabel(r.URL.Path)
			m.requestsTotal.WithLabelValues(r.Method, path, recorder.statusLabel()).Inc()
			m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(started).Seconds())
		})
	}
}

// ObserveFixtureLoad counts one fixture load.
func (m *Metrics) ObserveFixtureLoad(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fixtureLoads.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
