package metrics

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ecozbite"

// Collector owns every Prometheus metric the service exports.
//
// Metrics:
//   - ecozbite_http_requests_total: requests by method, route and status code
//   - ecozbite_http_request_duration_seconds: request latency by method and route
//   - ecozbite_rules_expiry_predictions_total: predictions by freshness status
//   - ecozbite_rules_discount_recommendations_total: recommendations by urgency
//   - ecozbite_rules_waste_analyses_total: completed waste analyses
//   - ecozbite_rules_waste_value_total: summed value of expired products analysed
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	expiryPredictions       *prometheus.CounterVec
	discountRecommendations *prometheus.CounterVec
	wasteAnalyses           prometheus.Counter
	wasteValue              prometheus.Counter
}

// NewCollector creates and registers all metrics. If registry is nil a new
// one is created, so tests never touch the global default registry.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),

		expiryPredictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rules",
				Name:      "expiry_predictions_total",
				Help:      "Expiry predictions by resulting freshness status",
			},
			[]string{"status"},
		),

		discountRecommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rules",
				Name:      "discount_recommendations_total",
				Help:      "Discount recommendations by urgency",
			},
			[]string{"urgency"},
		),

		wasteAnalyses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rules",
				Name:      "waste_analyses_total",
				Help:      "Completed waste analyses",
			},
		),

		wasteValue: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rules",
				Name:      "waste_value_total",
				Help:      "Summed value of expired products across waste analyses",
			},
		),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.expiryPredictions,
		c.discountRecommendations,
		c.wasteAnalyses,
		c.wasteValue,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the registry the collector registered into.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Middleware records request count and latency. The route label is the chi
// route pattern so path parameters don't explode cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)

		c.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// RecordExpiryPrediction counts a prediction by its freshness status.
func (c *Collector) RecordExpiryPrediction(status string) {
	c.expiryPredictions.WithLabelValues(status).Inc()
}

// RecordDiscountRecommendation counts a recommendation by urgency.
func (c *Collector) RecordDiscountRecommendation(urgency string) {
	c.discountRecommendations.WithLabelValues(urgency).Inc()
}

// RecordWasteAnalysis counts an analysis and adds its total waste value.
// Negative totals (possible with negative prices) and infinities are not added.
func (c *Collector) RecordWasteAnalysis(totalValue float64) {
	c.wasteAnalyses.Inc()
	if totalValue > 0 && !math.IsInf(totalValue, 1) {
		c.wasteValue.Add(totalValue)
	}
}

// Handler returns the Prometheus exposition handler for this registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}
