package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecozbite/ai-service/internal/models"
	"github.com/ecozbite/ai-service/internal/repository"
	"github.com/ecozbite/ai-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLister struct{}

func (failingLister) GetAll(ctx context.Context) ([]models.CategoryShelfLife, error) {
	return nil, errors.New("table unavailable")
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	handler := NewCategoryHandler(repository.NewInMemoryShelfLifeRepository(), logger.New("error"))

	w := httptest.NewRecorder()
	handler.ListCategories(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, float64(7), body["default_shelf_life_days"])
	categories, ok := body["categories"].([]interface{})
	require.True(t, ok)
	require.Len(t, categories, 9)
	assert.Equal(t, map[string]interface{}{"category": "bakery", "shelf_life_days": float64(2)}, categories[0])
}

func TestCategoryHandler_RepositoryError(t *testing.T) {
	handler := NewCategoryHandler(failingLister{}, logger.New("error"))

	w := httptest.NewRecorder()
	handler.ListCategories(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
}
