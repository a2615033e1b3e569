package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"recipe-pantry-api/internal/model"
	"recipe-pantry-api/internal/repository"
	"recipe-pantry-api/internal/service"
)

type InventoryHandler struct {
	repo     *repository.InventoryRepo
	resolver *service.ResolverService
}

func NewInventoryHandler(repo *repository.InventoryRepo, resolver *service.ResolverService) *InventoryHandler {
	return &InventoryHandler{repo: repo, resolver: resolver}
}

// List returns the user's inventory grouped by category.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_param",
			Message: "Query parameter 'user_id' is required",
		})
		return
	}

	items, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load inventory",
		})
		return
	}

	total := 0
	for _, names := range items {
		total += len(names)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.InventoryResponse{
		UserID: userID,
		Items:  items,
		Total:  total,
	})
}

// Add inserts an ingredient into the user's inventory. When the request
// omits a category, the name is resolved against the global catalog to
// pick up a canonical spelling and category.
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	if req.UserID == "" || strings.TrimSpace(req.Name) == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_fields",
			Message: "user_id and name are required",
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	resolved := false
	confidence := 0.0

	if category == "" {
		resolution, err := h.resolver.Resolve(ctx, name)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(model.ErrorResponse{
				Error:   "database_error",
				Message: "Failed to resolve ingredient name",
			})
			return
		}
		name = resolution.Name
		resolved = resolution.Matched
		confidence = resolution.Confidence
		category = resolution.Category
		if category == "" {
			category = "uncategorized"
		}
	}

	item, err := h.repo.Add(ctx, req.UserID, category, name)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to add inventory item",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(model.InventoryItemResponse{
		Item:               *item,
		Resolved:           resolved,
		ResolvedConfidence: confidence,
	})
}

// Remove deletes an inventory item belonging to the user.
func (h *InventoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_param",
			Message: "Query parameter 'user_id' is required",
		})
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Inventory item ID must be a number",
		})
		return
	}

	removed, err := h.repo.Remove(ctx, userID, itemID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to remove inventory item",
		})
		return
	}
	if !removed {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "not_found",
			Message: "Inventory item not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
