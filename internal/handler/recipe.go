package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"recipe-pantry-api/internal/model"
	"recipe-pantry-api/internal/repository"
)

type RecipeHandler struct {
	repo *repository.RecipeRepo
}

func NewRecipeHandler(repo *repository.RecipeRepo) *RecipeHandler {
	return &RecipeHandler{repo: repo}
}

// List returns all recipes, optionally filtered by ?cuisine=.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipes, err := h.repo.List(ctx, r.URL.Query().Get("cuisine"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list recipes",
		})
		return
	}

	if recipes == nil {
		recipes = []model.Recipe{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.RecipesResponse{
		Recipes: recipes,
		Total:   len(recipes),
	})
}

// Get returns one recipe by ID.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Recipe ID must be a UUID",
		})
		return
	}

	recipe, err := h.repo.GetByID(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		code := "database_error"
		if errors.Is(err, pgx.ErrNoRows) {
			status = http.StatusNotFound
			code = "not_found"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   code,
			Message: "Failed to load recipe",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

// Create stores a new recipe.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	if strings.TrimSpace(req.Title) == "" || len(req.IngredientLines) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "missing_fields",
			Message: "title and ingredient_lines are required",
		})
		return
	}

	recipe, err := h.repo.Create(ctx, req)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create recipe",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(recipe)
}

// Delete removes a recipe by ID.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Recipe ID must be a UUID",
		})
		return
	}

	deleted, err := h.repo.Delete(ctx, id)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete recipe",
		})
		return
	}
	if !deleted {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "not_found",
			Message: "Recipe not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
