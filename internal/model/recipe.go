package model

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a stored recipe. IngredientLines keeps the raw free-text
// lines exactly as entered; parsing happens in the matching engine.
type Recipe struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Cuisine         string    `json:"cuisine,omitempty"`
	Category        string    `json:"category,omitempty"`
	IngredientLines []string  `json:"ingredient_lines"`
	Instructions    []string  `json:"instructions,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateRecipeRequest is the payload for POST /api/v1/recipes.
type CreateRecipeRequest struct {
	Title           string   `json:"title"`
	Cuisine         string   `json:"cuisine,omitempty"`
	Category        string   `json:"category,omitempty"`
	IngredientLines []string `json:"ingredient_lines"`
	Instructions    []string `json:"instructions,omitempty"`
}

// RecipeSuggestion is one AI-generated recipe idea built from the
// ingredients a user already has.
type RecipeSuggestion struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions,omitempty"`
	Description  string   `json:"description,omitempty"`
}
