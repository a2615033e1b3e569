package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"recipe-pantry-api/internal/model"
	"recipe-pantry-api/internal/service"
)

type CompatHandler struct {
	compatSvc *service.CompatService
}

func NewCompatHandler(compatSvc *service.CompatService) *CompatHandler {
	return &CompatHandler{compatSvc: compatSvc}
}

// Report returns the compatibility report for one recipe against the
// requesting user's inventory.
func (h *CompatHandler) Report(w http.ResponseWriter, r *http.Request) {
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

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Recipe ID must be a UUID",
		})
		return
	}

	report, err := h.compatSvc.ReportForRecipe(ctx, userID, recipeID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "not_found",
			Message: "Failed to compute compatibility report",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Ranked returns all recipes scored against the user's inventory,
// best match first. Optional ?cuisine= filter.
func (h *CompatHandler) Ranked(w http.ResponseWriter, r *http.Request) {
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

	ranked, err := h.compatSvc.RankRecipes(ctx, userID, r.URL.Query().Get("cuisine"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to rank recipes",
		})
		return
	}

	if ranked == nil {
		ranked = []service.RankedRecipe{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ranked)
}

// ShoppingList exports the missing ingredients of a recipe as plain
// text, one per line, ready to download.
func (h *CompatHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
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

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Recipe ID must be a UUID",
		})
		return
	}

	list, err := h.compatSvc.ShoppingList(ctx, userID, recipeID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error:   "not_found",
			Message: "Failed to build shopping list",
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping-list.txt"`)
	w.Write([]byte(list))
}
