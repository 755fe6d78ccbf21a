package models

import "time"

// WasteRequest is the body of POST /analyze-waste
type WasteRequest struct {
	Products *[]Product `json:"products"`
}

// WasteBucket aggregates expired products of one category.
type WasteBucket struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// WasteAnalysis is the response of POST /analyze-waste
type WasteAnalysis struct {
	AnalysisID      string                 `json:"analysis_id"`
	TotalWasteValue float64                `json:"total_waste_value"`
	WasteByCategory map[string]WasteBucket `json:"waste_by_category"`
	Suggestions     []string               `json:"suggestions"`
	AnalysisDate    time.Time              `json:"analysis_date"`
}
