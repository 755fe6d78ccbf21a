package models

// Product represents an inventory item submitted for waste analysis.
// Optional fields are pointers so absent values can take their defaults.
type Product struct {
	Category      *string  `json:"category,omitempty"`
	PurchaseDate  *string  `json:"purchase_date,omitempty"`
	Status        string   `json:"status"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
}

// CategoryShelfLife is one row of the shelf-life table.
type CategoryShelfLife struct {
	Category      string `json:"category"`
	ShelfLifeDays int    `json:"shelf_life_days"`
}

// CategoryList is the response for GET /categories
type CategoryList struct {
	Categories           []CategoryShelfLife `json:"categories"`
	DefaultShelfLifeDays int                 `json:"default_shelf_life_days"`
}
