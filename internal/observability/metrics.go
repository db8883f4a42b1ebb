package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for the link server and provides
// helpers to wire them into HTTP handlers.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Evaluations *prometheus.CounterVec

	CatalogTransceivers prometheus.Gauge
	CatalogStations     prometheus.Gauge
	CatalogSpacecraft   prometheus.Gauge
}

// NewCollector registers the server's Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry
// when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkserver_requests_total",
		Help: "Total number of handled HTTP requests, labeled by route, method, and status code.",
	}, []string{"route", "method", "code"})
	requests, err := registerCounterVec(reg, requests, "linkserver_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkserver_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route", "method"})
	durations, err = registerHistogramVec(reg, durations, "linkserver_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkserver_evaluations_total",
		Help: "Total number of evaluations run, labeled by kind (budget, safety, pass) and outcome.",
	}, []string{"kind", "outcome"})
	evaluations, err = registerCounterVec(reg, evaluations, "linkserver_evaluations_total")
	if err != nil {
		return nil, err
	}

	transceivers, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_transceivers",
		Help: "Current number of transceiver models in the catalog.",
	}), "catalog_transceivers")
	if err != nil {
		return nil, err
	}
	stations, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_stations",
		Help: "Current number of ground stations in the catalog.",
	}), "catalog_stations")
	if err != nil {
		return nil, err
	}
	spacecraft, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_spacecraft",
		Help: "Current number of spacecraft in the catalog.",
	}), "catalog_spacecraft")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:            gatherer,
		HTTPRequests:        requests,
		HTTPDurations:       durations,
		Evaluations:         evaluations,
		CatalogTransceivers: transceivers,
		CatalogStations:     stations,
		CatalogSpacecraft:   spacecraft,
	}, nil
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and durations for an HTTP route.
func (c *Collector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, req)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(route, req.Method, fmt.Sprintf("%d", rec.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RecordEvaluation counts one evaluation by kind (budget, safety, pass)
// and outcome (ok, error).
func (c *Collector) RecordEvaluation(kind, outcome string) {
	if c == nil || c.Evaluations == nil {
		return
	}
	c.Evaluations.WithLabelValues(kind, outcome).Inc()
}

// SetCatalogCounts drives the catalog gauges, typically straight from
// Catalog.Counts after a scenario load.
func (c *Collector) SetCatalogCounts(transceivers, stations, spacecraft int) {
	if c == nil {
		return
	}
	if c.CatalogTransceivers != nil {
		c.CatalogTransceivers.Set(float64(transceivers))
	}
	if c.CatalogStations != nil {
		c.CatalogStations.Set(float64(stations))
	}
	if c.CatalogSpacecraft != nil {
		c.CatalogSpacecraft.Set(float64(spacecraft))
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
