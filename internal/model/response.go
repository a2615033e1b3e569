package model

import "time"

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RecipesResponse wraps a recipe listing.
type RecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
}

// InventoryResponse returns a user's inventory grouped by category.
type InventoryResponse struct {
	UserID string              `json:"user_id"`
	Items  map[string][]string `json:"items"`
	Total  int                 `json:"total"`
}

// CatalogResponse returns the global catalog grouped by category.
type CatalogResponse struct {
	Categories map[string][]string `json:"categories"`
	Total      int                 `json:"total"`
}

// InventoryItemResponse wraps a newly added inventory item together
// with how its name was resolved against the global catalog.
type InventoryItemResponse struct {
	Item               InventoryItem `json:"item"`
	Resolved           bool          `json:"resolved"`
	ResolvedConfidence float64       `json:"resolved_confidence,omitempty"`
}

// SuggestionsResponse wraps AI recipe suggestions.
type SuggestionsResponse struct {
	Suggestions []RecipeSuggestion `json:"suggestions"`
}
