package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"recipe-pantry-api/internal/matching"
	"recipe-pantry-api/internal/model"
)

type fakeRecipes struct {
	recipes []model.Recipe
}

func (f *fakeRecipes) List(ctx context.Context, cuisine string) ([]model.Recipe, error) {
	if cuisine == "" {
		return f.recipes, nil
	}
	var out []model.Recipe
	for _, r := range f.recipes {
		if r.Cuisine == cuisine {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipes) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe %s not found", id)
}

type fakeInventory struct {
	byUser map[string]map[string][]string
}

func (f *fakeInventory) ListByUser(ctx context.Context, userID string) (map[string][]string, error) {
	return f.byUser[userID], nil
}

type fakeCatalog struct {
	items map[string][]string
}

func (f *fakeCatalog) All(ctx context.Context) (map[string][]string, error) {
	return f.items, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, recipes []model.Recipe, inventory map[string][]string) (*CompatService, *ReportCache) {
	t.Helper()

	cache, err := NewReportCache()
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	svc := NewCompatService(
		&fakeRecipes{recipes: recipes},
		&fakeInventory{byUser: map[string]map[string][]string{"u1": inventory}},
		&fakeCatalog{items: map[string][]string{"spices": {"saffron threads"}}},
		matching.NewMatcher(matching.DefaultParams()),
		cache,
		testLogger(),
	)
	return svc, cache
}

func TestReportForRecipe(t *testing.T) {
	recipeID := uuid.New()
	recipes := []model.Recipe{{
		ID:              recipeID,
		Title:           "Tomato Soup",
		IngredientLines: []string{"2 cups tomato, diced", "1 onion", "1 cup flour"},
	}}
	inventory := map[string][]string{"produce": {"tomato", "onion"}}

	svc, cache := newTestService(t, recipes, inventory)

	report, err := svc.ReportForRecipe(context.Background(), "u1", recipeID)
	require.NoError(t, err)

	require.Equal(t, 3, report.TotalIngredients)
	require.Equal(t, 67, report.CompatibilityScore)
	require.Len(t, report.Missing, 1)
	require.Equal(t, "flour", report.Missing[0].RecipeIngredient)

	// The computed report lands in the cache under the versioned key.
	cache.Wait()
	inv := matching.BuildIndex(inventory)
	global := matching.BuildIndex(map[string][]string{"spices": {"saffron threads"}})
	cached, ok := cache.Get(ReportKey(recipeID.String(), inv.Hash(), global.Hash()))
	require.True(t, ok)
	require.Equal(t, report.CompatibilityScore, cached.CompatibilityScore)

	// Second call is served without recomputation.
	again, err := svc.ReportForRecipe(context.Background(), "u1", recipeID)
	require.NoError(t, err)
	require.Equal(t, report, again)
}

func TestReportForRecipeUnknownRecipe(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	_, err := svc.ReportForRecipe(context.Background(), "u1", uuid.New())
	require.Error(t, err)
}

func TestRankRecipes(t *testing.T) {
	fullMatch := model.Recipe{
		ID:              uuid.New(),
		Title:           "Tomato Salad",
		IngredientLines: []string{"1 tomato", "1 onion"},
	}
	noMatch := model.Recipe{
		ID:              uuid.New(),
		Title:           "Chocolate Cake",
		IngredientLines: []string{"2 cups flour", "1 cup cocoa"},
	}
	inventory := map[string][]string{"produce": {"tomato", "onion"}}

	svc, _ := newTestService(t, []model.Recipe{noMatch, fullMatch}, inventory)

	ranked, err := svc.RankRecipes(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	require.Equal(t, "Tomato Salad", ranked[0].Recipe.Title)
	require.Equal(t, 100, ranked[0].Report.CompatibilityScore)
	require.Equal(t, "Chocolate Cake", ranked[1].Recipe.Title)
	require.Equal(t, 0, ranked[1].Report.CompatibilityScore)
}

func TestShoppingList(t *testing.T) {
	recipeID := uuid.New()
	recipes := []model.Recipe{{
		ID:              recipeID,
		Title:           "Pancakes",
		IngredientLines: []string{"2 cups flour", "2 eggs", "1 cup milk"},
	}}

	svc, _ := newTestService(t, recipes, map[string][]string{"dairy": {"milk"}})

	list, err := svc.ShoppingList(context.Background(), "u1", recipeID)
	require.NoError(t, err)
	require.Equal(t, "flour\neggs", list)
}

func TestAvailableIngredients(t *testing.T) {
	svc, _ := newTestService(t, nil, map[string][]string{
		"produce": {"tomato"},
		"dairy":   {"milk", "butter"},
	})

	names, err := svc.AvailableIngredients(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"milk", "butter", "tomato"}, names)
}
