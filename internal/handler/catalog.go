package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"recipe-pantry-api/internal/model"
	"recipe-pantry-api/internal/repository"
)

type CatalogHandler struct {
	repo *repository.CatalogRepo
}

func NewCatalogHandler(repo *repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// List returns the global ingredient catalog grouped by category.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.repo.All(ctx)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load catalog",
		})
		return
	}

	total := 0
	for _, names := range categories {
		total += len(names)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.CatalogResponse{
		Categories: categories,
		Total:      total,
	})
}

// Add contributes an ingredient to the shared catalog.
func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Name) == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_fields",
			Message: "category and name are required",
		})
		return
	}

	inserted, err := h.repo.Add(ctx, strings.TrimSpace(req.Category), strings.TrimSpace(req.Name))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to add catalog ingredient",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if inserted {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(req)
}
