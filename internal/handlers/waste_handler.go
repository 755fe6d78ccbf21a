package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecozbite/ai-service/internal/models"
)

// wasteAnalyzer is the interface for waste analysis
type wasteAnalyzer interface {
	AnalyzeWaste(ctx context.Context, req models.WasteRequest) (*models.WasteAnalysis, error)
}

// WasteHandler handles POST /analyze-waste
type WasteHandler struct {
	service  wasteAnalyzer
	recorder OutcomeRecorder
	logger   *slog.Logger
}

// NewWasteHandler creates a new waste handler. recorder may be nil.
func NewWasteHandler(service wasteAnalyzer, recorder OutcomeRecorder, logger *slog.Logger) *WasteHandler {
	return &WasteHandler{
		service:  service,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

// AnalyzeWaste handles POST /analyze-waste
func (h *WasteHandler) AnalyzeWaste(w http.ResponseWriter, r *http.Request) {
	var req models.WasteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger, "analyze waste")
		return
	}

	analysis, err := h.service.AnalyzeWaste(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger, "analyze waste")
		return
	}

	products := 0
	if req.Products != nil {
		products = len(*req.Products)
	}

	h.recorder.RecordWasteAnalysis(analysis.TotalWasteValue)
	h.logger.Info("waste analysed",
		"analysis_id", analysis.AnalysisID,
		"products", products,
		"total_waste_value", analysis.TotalWasteValue,
		"suggestions", len(analysis.Suggestions),
	)
	WriteJSON(w, http.StatusOK, analysis, h.logger)
}
