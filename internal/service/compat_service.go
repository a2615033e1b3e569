package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"recipe-pantry-api/internal/matching"
	"recipe-pantry-api/internal/model"
)

// RecipeSource provides stored recipes.
type RecipeSource interface {
	List(ctx context.Context, cuisine string) ([]model.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
}

// InventorySource provides a user's inventory grouped by category.
type InventorySource interface {
	ListByUser(ctx context.Context, userID string) (map[string][]string, error)
}

// CatalogSource provides the global ingredient catalog grouped by
// category.
type CatalogSource interface {
	All(ctx context.Context) (map[string][]string, error)
}

// RankedRecipe pairs a recipe with its compatibility report.
type RankedRecipe struct {
	Recipe model.Recipe                 `json:"recipe"`
	Report matching.CompatibilityReport `json:"report"`
}

// CompatService runs the matching engine over stored recipes and a
// user's inventory. The engine itself is pure; this layer owns the I/O,
// index construction and report caching around it.
type CompatService struct {
	recipes   RecipeSource
	inventory InventorySource
	catalog   CatalogSource
	matcher   *matching.Matcher
	cache     *ReportCache
	logger    *slog.Logger
}

func NewCompatService(
	recipes RecipeSource,
	inventory InventorySource,
	catalog CatalogSource,
	matcher *matching.Matcher,
	cache *ReportCache,
	logger *slog.Logger,
) *CompatService {
	return &CompatService{
		recipes:   recipes,
		inventory: inventory,
		catalog:   catalog,
		matcher:   matcher,
		cache:     cache,
		logger:    logger,
	}
}

// buildIndexes snapshots the user's inventory and the global catalog
// into fresh immutable indexes. Rebuilt per request so a report can
// never be computed against a stale index.
func (s *CompatService) buildIndexes(ctx context.Context, userID string) (*matching.Index, *matching.Index, error) {
	inventoryByCategory, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	catalogByCategory, err := s.catalog.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return matching.BuildIndex(inventoryByCategory), matching.BuildIndex(catalogByCategory), nil
}

// ReportForRecipe computes (or recalls) the compatibility report for
// one recipe against the user's current inventory.
func (s *CompatService) ReportForRecipe(ctx context.Context, userID string, recipeID uuid.UUID) (*matching.CompatibilityReport, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}

	inv, global, err := s.buildIndexes(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := ReportKey(recipe.ID.String(), inv.Hash(), global.Hash())
	if report, ok := s.cache.Get(key); ok {
		return report, nil
	}

	report := s.matcher.ScoreRecipe(recipe.ID.String(), recipe.IngredientLines, inv, global)
	s.cache.Set(key, &report)

	s.logger.Debug("computed compatibility report",
		"recipe_id", recipe.ID,
		"user_id", userID,
		"score", report.CompatibilityScore,
		"missing", len(report.Missing),
	)

	return &report, nil
}

// RankRecipes scores every stored recipe against the user's inventory
// and orders them best-first: higher compatibility, then fewer missing
// ingredients.
func (s *CompatService) RankRecipes(ctx context.Context, userID, cuisine string) ([]RankedRecipe, error) {
	recipes, err := s.recipes.List(ctx, cuisine)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	inv, global, err := s.buildIndexes(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		key := ReportKey(recipe.ID.String(), inv.Hash(), global.Hash())
		report, ok := s.cache.Get(key)
		if !ok {
			computed := s.matcher.ScoreRecipe(recipe.ID.String(), recipe.IngredientLines, inv, global)
			report = &computed
			s.cache.Set(key, report)
		}
		ranked = append(ranked, RankedRecipe{Recipe: recipe, Report: *report})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Report.CompatibilityScore != ranked[j].Report.CompatibilityScore {
			return ranked[i].Report.CompatibilityScore > ranked[j].Report.CompatibilityScore
		}
		return len(ranked[i].Report.Missing) < len(ranked[j].Report.Missing)
	})

	return ranked, nil
}

// ShoppingList renders the plain-text shopping list for a recipe: the
// missing ingredient names, one per line.
func (s *CompatService) ShoppingList(ctx context.Context, userID string, recipeID uuid.UUID) (string, error) {
	report, err := s.ReportForRecipe(ctx, userID, recipeID)
	if err != nil {
		return "", err
	}
	return report.ShoppingListText(), nil
}

// AvailableIngredients flattens the user's inventory to a plain name
// list, category order deterministic. Used by the suggestion endpoint.
func (s *CompatService) AvailableIngredients(ctx context.Context, userID string) ([]string, error) {
	byCategory, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var names []string
	for _, cat := range categories {
		names = append(names, byCategory[cat]...)
	}
	return names, nil
}
