package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecozbite/ai-service/internal/models"
	"github.com/ecozbite/ai-service/internal/repository"
)

type categoryLister interface {
	GetAll(ctx context.Context) ([]models.CategoryShelfLife, error)
}

// CategoryHandler serves the shelf-life table
type CategoryHandler struct {
	repo   categoryLister
	logger *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo categoryLister, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.CategoryList{
		Categories:           categories,
		DefaultShelfLifeDays: repository.DefaultShelfLifeDays,
	}, h.logger)
}
