package model

import "time"

// InventoryItem is one ingredient a user has on hand.
type InventoryItem struct {
	ID       int       `json:"id"`
	UserID   string    `json:"user_id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	AddedAt  time.Time `json:"added_at"`
}

// AddInventoryRequest is the payload for POST /api/v1/inventory. When
// Category is empty the server resolves it against the global catalog.
type AddInventoryRequest struct {
	UserID   string `json:"user_id"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name"`
}

// AddCatalogRequest is the payload for POST /api/v1/catalog.
type AddCatalogRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}
