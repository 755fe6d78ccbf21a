package metrics

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_NilRegistry(t *testing.T) {
	c := NewCollector(nil)
	require.NotNil(t, c.Registry())
}

func TestCollector_Middleware(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/predict-expiry", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodPost, "/predict-expiry", nil),
		httptest.NewRequest(http.MethodGet, "/nope", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("POST", "/predict-expiry", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(c.requestDuration), "one latency series per method and route")
}

func TestCollector_RuleOutcomes(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordExpiryPrediction("fresh")
	c.RecordExpiryPrediction("fresh")
	c.RecordExpiryPrediction("expired")
	c.RecordDiscountRecommendation("high")
	c.RecordWasteAnalysis(12.5)
	c.RecordWasteAnalysis(-3)
	c.RecordWasteAnalysis(math.Inf(1))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.expiryPredictions.WithLabelValues("fresh")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.expiryPredictions.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.discountRecommendations.WithLabelValues("high")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.wasteAnalyses))
	assert.Equal(t, 12.5, testutil.ToFloat64(c.wasteValue))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	c.RecordDiscountRecommendation("low")

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `ecozbite_rules_discount_recommendations_total{urgency="low"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
