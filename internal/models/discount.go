package models

// Urgency labels for discount recommendations.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// DiscountRequest is the body of POST /recommend-discount
type DiscountRequest struct {
	DaysUntilExpiry *int     `json:"days_until_expiry"`
	OriginalPrice   *float64 `json:"original_price,omitempty"`
}

// DiscountRecommendation is the response of POST /recommend-discount
type DiscountRecommendation struct {
	RecommendedDiscountPercentage int     `json:"recommended_discount_percentage"`
	OriginalPrice                 float64 `json:"original_price"`
	DiscountedPrice               float64 `json:"discounted_price"`
	DaysUntilExpiry               int     `json:"days_until_expiry"`
	Urgency                       string  `json:"urgency"`
}
