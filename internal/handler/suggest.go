package handler

import (
	"encoding/json"
	"net/http"

	"recipe-pantry-api/internal/client"
	"recipe-pantry-api/internal/model"
	"recipe-pantry-api/internal/service"
)

type SuggestHandler struct {
	compatSvc *service.CompatService
	suggester client.Suggester
}

func NewSuggestHandler(compatSvc *service.CompatService, suggester client.Suggester) *SuggestHandler {
	return &SuggestHandler{compatSvc: compatSvc, suggester: suggester}
}

type suggestRequest struct {
	UserID  string `json:"user_id"`
	Cuisine string `json:"cuisine,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// Suggest asks the LLM for recipe ideas cookable from the user's
// current inventory.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	if req.UserID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_fields",
			Message: "user_id is required",
		})
		return
	}

	available, err := h.compatSvc.AvailableIngredients(ctx, req.UserID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load inventory",
		})
		return
	}

	if len(available) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "empty_inventory",
			Message: "Add ingredients to the inventory before asking for suggestions",
		})
		return
	}

	suggestions, err := h.suggester.SuggestRecipes(ctx, available, req.Cuisine, req.Count)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "suggestion_failed",
			Message: "The suggestion service is unavailable",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.SuggestionsResponse{
		Suggestions: suggestions,
	})
}
