package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecozbite/ai-service/internal/models"
)

// expiryPredictor is the interface for expiry estimation
type expiryPredictor interface {
	PredictExpiry(ctx context.Context, req models.ExpiryRequest) (*models.ExpiryPrediction, error)
}

// ExpiryHandler handles POST /predict-expiry
type ExpiryHandler struct {
	service  expiryPredictor
	recorder OutcomeRecorder
	logger   *slog.Logger
}

// NewExpiryHandler creates a new expiry handler. recorder may be nil.
func NewExpiryHandler(service expiryPredictor, recorder OutcomeRecorder, logger *slog.Logger) *ExpiryHandler {
	return &ExpiryHandler{
		service:  service,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

// PredictExpiry handles POST /predict-expiry
func (h *ExpiryHandler) PredictExpiry(w http.ResponseWriter, r *http.Request) {
	var req models.ExpiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger, "predict expiry")
		return
	}

	prediction, err := h.service.PredictExpiry(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger, "predict expiry")
		return
	}

	h.recorder.RecordExpiryPrediction(prediction.Status)
	h.logger.Debug("expiry predicted",
		"category", prediction.Category,
		"days_until_expiry", prediction.DaysUntilExpiry,
		"status", prediction.Status,
	)
	WriteJSON(w, http.StatusOK, prediction, h.logger)
}
