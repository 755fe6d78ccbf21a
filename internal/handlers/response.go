package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ecozbite/ai-service/internal/service"
)

// maxBodyBytes caps request bodies for the rule endpoints.
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response. The body is encoded before the status is
// committed, so values that cannot be encoded become a 500 error response.
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode JSON response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Error("failed to write JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads the request body into v. An empty body, null or a JSON
// array leaves v untouched so the service reports the missing fields.
// Exactly one JSON value is accepted.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return service.NewInternalError("decode request", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return service.NewInternalError("decode request", err)
		}
		return service.NewInternalError("decode request", errTrailingData)
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] == '[' {
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return service.NewInternalError("decode request", err)
	}
	return nil
}

// writeServiceError maps a rule error onto the response: validation
// failures are 400 with their fixed message, oversized bodies 413, and
// anything else 500 with the error text.
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger, op string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		logger.Warn("rejected request", "op", op, "field", ve.Field)
		WriteError(w, http.StatusBadRequest, ve.Message, logger)
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.Warn("request body too large", "op", op, "limit", tooLarge.Limit)
		WriteError(w, http.StatusRequestEntityTooLarge, err.Error(), logger)
		return
	}

	logger.Error("rule evaluation failed", "op", op, "error", err)
	WriteError(w, http.StatusInternalServerError, err.Error(), logger)
}

// OutcomeRecorder receives rule outcomes, typically for metrics.
type OutcomeRecorder interface {
	RecordExpiryPrediction(status string)
	RecordDiscountRecommendation(urgency string)
	RecordWasteAnalysis(totalValue float64)
}

type noopRecorder struct{}

func (noopRecorder) RecordExpiryPrediction(string)       {}
func (noopRecorder) RecordDiscountRecommendation(string) {}
func (noopRecorder) RecordWasteAnalysis(float64)         {}

func recorderOrNoop(r OutcomeRecorder) OutcomeRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
