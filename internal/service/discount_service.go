package service

import (
	"context"
	"math"

	"github.com/ecozbite/ai-service/internal/models"
)

// DiscountService recommends markdowns for items close to expiry
type DiscountService struct{}

// NewDiscountService creates a new discount service
func NewDiscountService() *DiscountService {
	return &DiscountService{}
}

// RecommendDiscount maps days until expiry to a discount and urgency label.
func (s *DiscountService) RecommendDiscount(ctx context.Context, req models.DiscountRequest) (*models.DiscountRecommendation, error) {
	if req.DaysUntilExpiry == nil {
		return nil, ErrDaysUntilExpiryRequired
	}

	days := *req.DaysUntilExpiry
	price := 0.0
	if req.OriginalPrice != nil {
		price = *req.OriginalPrice
	}

	pct := DiscountPercentage(days)

	return &models.DiscountRecommendation{
		RecommendedDiscountPercentage: pct,
		OriginalPrice:                 price,
		DiscountedPrice:               roundCents(price * (1 - float64(pct)/100)),
		DaysUntilExpiry:               days,
		Urgency:                       Urgency(days),
	}, nil
}

// DiscountPercentage returns the recommended markdown in percent.
func DiscountPercentage(daysUntilExpiry int) int {
	switch {
	case daysUntilExpiry <= 0:
		return 70
	case daysUntilExpiry == 1:
		return 50
	case daysUntilExpiry == 2:
		return 30
	case daysUntilExpiry == 3:
		return 20
	default:
		return 0
	}
}

// Urgency labels how soon an item needs to move.
func Urgency(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry <= 1:
		return models.UrgencyHigh
	case daysUntilExpiry <= 3:
		return models.UrgencyMedium
	default:
		return models.UrgencyLow
	}
}

// roundCents rounds to two decimals, halves away from zero. Values too
// large to scale by 100 are already whole and are returned unchanged.
func roundCents(v float64) float64 {
	scaled := v * 100
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / 100
}
