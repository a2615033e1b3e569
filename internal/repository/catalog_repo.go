package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// All returns the global ingredient catalog grouped by category.
func (r *CatalogRepo) All(ctx context.Context) (map[string][]string, error) {
	query := `
		SELECT category, name
		FROM catalog_ingredients
		ORDER BY category, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCategory := make(map[string][]string)
	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			return nil, err
		}
		byCategory[category] = append(byCategory[category], name)
	}

	return byCategory, rows.Err()
}

// Add inserts a catalog ingredient, ignoring duplicates. Reports
// whether a new row was inserted.
func (r *CatalogRepo) Add(ctx context.Context, category, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO catalog_ingredients (category, name)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT uq_catalog_category_name DO NOTHING
	`, category, name)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
