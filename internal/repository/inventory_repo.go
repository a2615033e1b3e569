package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-pantry-api/internal/model"
)

type InventoryRepo struct {
	db *pgxpool.Pool
}

func NewInventoryRepo(db *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// ListByUser returns a user's inventory grouped by category, the shape
// the matching engine's index builder consumes.
func (r *InventoryRepo) ListByUser(ctx context.Context, userID string) (map[string][]string, error) {
	query := `
		SELECT category, name
		FROM inventory_items
		WHERE user_id = $1
		ORDER BY category, id
	`

	rows, err := r.db.Query(ctx, query, userID)
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

// Add inserts an ingredient into a user's inventory. Duplicate entries
// are ignored and the existing row is returned.
func (r *InventoryRepo) Add(ctx context.Context, userID, category, name string) (*model.InventoryItem, error) {
	query := `
		INSERT INTO inventory_items (user_id, category, name)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT uq_inventory_user_category_name DO UPDATE SET name = EXCLUDED.name
		RETURNING id, user_id, category, name, added_at
	`

	var item model.InventoryItem
	err := r.db.QueryRow(ctx, query, userID, category, name).Scan(
		&item.ID, &item.UserID, &item.Category, &item.Name, &item.AddedAt)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Remove deletes an inventory item owned by the user. Reports whether a
// row was deleted.
func (r *InventoryRepo) Remove(ctx context.Context, userID string, itemID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM inventory_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
