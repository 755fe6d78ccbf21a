package service

import (
	"context"

	"github.com/ecozbite/ai-service/internal/clock"
	"github.com/ecozbite/ai-service/internal/models"
	"github.com/google/uuid"
)

const unknownCategory = "unknown"

// Suggestions emitted by AnalyzeWaste, in output order.
const (
	SuggestInventoryManagement = "Consider implementing better inventory management"
	SuggestMonitorDairy        = "Monitor dairy products more closely - they expire quickly"
	SuggestSmallerVegetables   = "Consider buying vegetables in smaller quantities"
)

// Suggestion thresholds
const (
	totalWasteThreshold     = 100
	dairyCountThreshold     = 2
	vegetableCountThreshold = 3
)

// WasteService aggregates the value of expired inventory
type WasteService struct {
	clock clock.Clock
}

// NewWasteService creates a new waste service
func NewWasteService(clk clock.Clock) *WasteService {
	return &WasteService{
		clock: clk,
	}
}

// AnalyzeWaste totals the value of expired products per category and
// derives reduction suggestions. Products whose status is not "expired"
// are ignored.
func (s *WasteService) AnalyzeWaste(ctx context.Context, req models.WasteRequest) (*models.WasteAnalysis, error) {
	if req.Products == nil {
		return nil, ErrProductsRequired
	}

	total := 0.0
	buckets := make(map[string]models.WasteBucket)

	for _, p := range *req.Products {
		if p.Status != models.StatusExpired {
			continue
		}

		value := wasteValue(p)
		total += value

		category := unknownCategory
		if p.Category != nil {
			category = *p.Category
		}

		b := buckets[category]
		b.Count++
		b.Value += value
		buckets[category] = b
	}

	return &models.WasteAnalysis{
		AnalysisID:      uuid.New().String(),
		TotalWasteValue: total,
		WasteByCategory: buckets,
		Suggestions:     suggestions(total, buckets),
		AnalysisDate:    s.clock.Now(),
	}, nil
}

// wasteValue is original_price * quantity with defaults 0 and 1.
func wasteValue(p models.Product) float64 {
	price := 0.0
	if p.OriginalPrice != nil {
		price = *p.OriginalPrice
	}
	quantity := 1
	if p.Quantity != nil {
		quantity = *p.Quantity
	}
	return price * float64(quantity)
}

func suggestions(total float64, buckets map[string]models.WasteBucket) []string {
	out := []string{}
	if total > totalWasteThreshold {
		out = append(out, SuggestInventoryManagement)
	}
	if buckets["dairy"].Count > dairyCountThreshold {
		out = append(out, SuggestMonitorDairy)
	}
	if buckets["vegetables"].Count > vegetableCountThreshold {
		out = append(out, SuggestSmallerVegetables)
	}
	return out
}
