package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-pantry-api/internal/model"
)

type RecipeRepo struct {
	db *pgxpool.Pool
}

func NewRecipeRepo(db *pgxpool.Pool) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// List returns all recipes, newest first. When cuisine is non-empty it
// filters on it.
func (r *RecipeRepo) List(ctx context.Context, cuisine string) ([]model.Recipe, error) {
	query := `
		SELECT id, title, cuisine, category, ingredient_lines, instructions, created_at
		FROM recipes
		WHERE ($1 = '' OR cuisine = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, cuisine)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var rec model.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Cuisine, &rec.Category,
			&rec.IngredientLines, &rec.Instructions, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	return recipes, rows.Err()
}

// GetByID returns one recipe or pgx.ErrNoRows.
func (r *RecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	query := `
		SELECT id, title, cuisine, category, ingredient_lines, instructions, created_at
		FROM recipes
		WHERE id = $1
	`

	var rec model.Recipe
	err := r.db.QueryRow(ctx, query, id).Scan(&rec.ID, &rec.Title, &rec.Cuisine,
		&rec.Category, &rec.IngredientLines, &rec.Instructions, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// Create inserts a new recipe and returns it with ID and timestamp set.
func (r *RecipeRepo) Create(ctx context.Context, req model.CreateRecipeRequest) (*model.Recipe, error) {
	rec := model.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Cuisine:         req.Cuisine,
		Category:        req.Category,
		IngredientLines: req.IngredientLines,
		Instructions:    req.Instructions,
		CreatedAt:       time.Now(),
	}
	if rec.IngredientLines == nil {
		rec.IngredientLines = []string{}
	}
	if rec.Instructions == nil {
		rec.Instructions = []string{}
	}

	query := `
		INSERT INTO recipes (id, title, cuisine, category, ingredient_lines, instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query, rec.ID, rec.Title, rec.Cuisine, rec.Category,
		rec.IngredientLines, rec.Instructions, rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// Delete removes a recipe. Reports whether a row was deleted.
func (r *RecipeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
