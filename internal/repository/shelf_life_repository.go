package repository

import (
	"context"
	"sort"

	"github.com/ecozbite/ai-service/internal/models"
)

// DefaultShelfLifeDays applies to any category not in the table.
const DefaultShelfLifeDays = 7

// shelfLifeDays is the fixed category table. It is never mutated.
var shelfLifeDays = map[string]int{
	"dairy":      7,
	"meat":       3,
	"vegetables": 5,
	"fruits":     4,
	"bakery":     2,
	"frozen":     30,
	"canned":     365,
	"dry_goods":  180,
	"beverages":  14,
}

// ShelfLifeRepository defines the interface for shelf-life lookups
type ShelfLifeRepository interface {
	GetAll(ctx context.Context) ([]models.CategoryShelfLife, error)
	GetDays(ctx context.Context, category string) (days int, known bool)
}

// InMemoryShelfLifeRepository serves the built-in shelf-life table
type InMemoryShelfLifeRepository struct {
	days map[string]int
}

// NewInMemoryShelfLifeRepository creates a repository over the built-in table
func NewInMemoryShelfLifeRepository() *InMemoryShelfLifeRepository {
	return &InMemoryShelfLifeRepository{
		days: shelfLifeDays,
	}
}

// GetAll returns every category sorted by name
func (r *InMemoryShelfLifeRepository) GetAll(ctx context.Context) ([]models.CategoryShelfLife, error) {
	entries := make([]models.CategoryShelfLife, 0, len(r.days))
	for category, days := range r.days {
		entries = append(entries, models.CategoryShelfLife{
			Category:      category,
			ShelfLifeDays: days,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})
	return entries, nil
}

// GetDays returns the shelf life for an already lower-cased category.
// Unknown categories get DefaultShelfLifeDays and known=false.
func (r *InMemoryShelfLifeRepository) GetDays(ctx context.Context, category string) (int, bool) {
	days, ok := r.days[category]
	if !ok {
		return DefaultShelfLifeDays, false
	}
	return days, true
}
