package models

import "time"

// Freshness statuses, from most to least urgent.
const (
	StatusExpired  = "expired"
	StatusCritical = "critical"
	StatusWarning  = "warning"
	StatusFresh    = "fresh"
)

// ExpiryRequest is the body of POST /predict-expiry
type ExpiryRequest struct {
	Category     *string `json:"category"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
}

// ExpiryPrediction is the response of POST /predict-expiry
type ExpiryPrediction struct {
	ExpiryDate          time.Time `json:"expiry_date"`
	DaysUntilExpiry     int       `json:"days_until_expiry"`
	Status              string    `json:"status"`
	Category            string    `json:"category"`
	EstimatedExpiryDays int       `json:"estimated_expiry_days"`
}
