package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecozbite/ai-service/internal/clock"
	"github.com/ecozbite/ai-service/internal/repository"
	"github.com/ecozbite/ai-service/internal/service"
	"github.com/ecozbite/ai-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpiryHandler(rec OutcomeRecorder) *ExpiryHandler {
	svc := service.NewExpiryService(repository.NewInMemoryShelfLifeRepository(), clock.Fixed(testNow))
	return NewExpiryHandler(svc, rec, logger.New("error"))
}

func TestExpiryHandler_PredictExpiry(t *testing.T) {
	rec := &fakeRecorder{}
	handler := newExpiryHandler(rec)

	w := postJSON(t, handler.PredictExpiry, "/predict-expiry", map[string]string{
		"category":      "Vegetables",
		"purchase_date": "2024-03-14T12:00:00Z",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "vegetables", body["category"])
	assert.Equal(t, float64(5), body["estimated_expiry_days"])
	assert.Equal(t, float64(4), body["days_until_expiry"])
	assert.Equal(t, "fresh", body["status"])

	expiry, err := time.Parse(time.RFC3339Nano, body["expiry_date"].(string))
	require.NoError(t, err)
	assert.True(t, expiry.Equal(time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)))

	assert.Equal(t, []string{"fresh"}, rec.statuses)
}

func TestExpiryHandler_Errors(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		wantStatus   int
		wantErrorMsg string
	}{
		{"missing category", map[string]string{"purchase_date": "2024-03-14"}, http.StatusBadRequest, "Category is required"},
		{"empty object", "{}", http.StatusBadRequest, "Category is required"},
		{"empty body", nil, http.StatusBadRequest, "Category is required"},
		{"null body", "null", http.StatusBadRequest, "Category is required"},
		{"malformed date", map[string]string{"category": "dairy", "purchase_date": "soon"}, http.StatusInternalServerError, ""},
		{"category of wrong type", `{"category": 5}`, http.StatusInternalServerError, ""},
		{"malformed JSON", `{"category":`, http.StatusInternalServerError, ""},
		{"null category", `{"category": null}`, http.StatusBadRequest, "Category is required"},
		{"array body", `[]`, http.StatusBadRequest, "Category is required"},
		{"non-empty array body", `["dairy"]`, http.StatusBadRequest, "Category is required"},
		{"trailing data", `{"category":"dairy"} junk`, http.StatusInternalServerError, "unexpected data after JSON body"},
		{"second JSON value", `{"category":"dairy"}{"category":"meat"}`, http.StatusInternalServerError, "unexpected data after JSON body"},
		{"expiry past year 9999", map[string]string{"category": "canned", "purchase_date": "9999-12-31"}, http.StatusInternalServerError, "date value out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			w := postJSON(t, newExpiryHandler(rec).PredictExpiry, "/predict-expiry", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			require.Contains(t, body, "error")
			assert.NotEmpty(t, body["error"])
			if tt.wantErrorMsg != "" {
				assert.Equal(t, tt.wantErrorMsg, body["error"])
			}
			assert.Empty(t, rec.statuses)
		})
	}
}

func TestExpiryHandler_DistantPast(t *testing.T) {
	w := postJSON(t, newExpiryHandler(nil).PredictExpiry, "/predict-expiry", map[string]string{
		"category":      "dairy",
		"purchase_date": "1500-01-01",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(-191455), body["days_until_expiry"])
	assert.Equal(t, "expired", body["status"])
}

func TestExpiryHandler_TrailingWhitespaceAccepted(t *testing.T) {
	w := postJSON(t, newExpiryHandler(nil).PredictExpiry, "/predict-expiry", "{\"category\":\"dairy\"}\n\t ")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiryHandler_BodyTooLarge(t *testing.T) {
	big := `{"category":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	w := postJSON(t, newExpiryHandler(nil).PredictExpiry, "/predict-expiry", big)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
