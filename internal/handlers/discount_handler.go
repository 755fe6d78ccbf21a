package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecozbite/ai-service/internal/models"
)

type discountRecommender interface {
	RecommendDiscount(ctx context.Context, req models.DiscountRequest) (*models.DiscountRecommendation, error)
}

// DiscountHandler handles POST /recommend-discount
type DiscountHandler struct {
	service  discountRecommender
	recorder OutcomeRecorder
	logger   *slog.Logger
}

// NewDiscountHandler creates a new discount handler. recorder may be nil.
func NewDiscountHandler(service discountRecommender, recorder OutcomeRecorder, logger *slog.Logger) *DiscountHandler {
	return &DiscountHandler{
		service:  service,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

// RecommendDiscount handles POST /recommend-discount
func (h *DiscountHandler) RecommendDiscount(w http.ResponseWriter, r *http.Request) {
	var req models.DiscountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger, "recommend discount")
		return
	}

	rec, err := h.service.RecommendDiscount(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger, "recommend discount")
		return
	}

	h.recorder.RecordDiscountRecommendation(rec.Urgency)
	WriteJSON(w, http.StatusOK, rec, h.logger)
}
