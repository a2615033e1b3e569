package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the schema if it does not exist yet. All
// statements are idempotent so this is safe to run on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			cuisine TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			ingredient_lines TEXT[] NOT NULL DEFAULT '{}',
			instructions TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create recipes table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_recipes_cuisine ON recipes(cuisine)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_recipes_cuisine: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS inventory_items (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT uq_inventory_user_category_name UNIQUE (user_id, category, name)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create inventory_items table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_inventory_user ON inventory_items(user_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_inventory_user: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS catalog_ingredients (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT uq_catalog_category_name UNIQUE (category, name)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create catalog_ingredients table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog_ingredients(category)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_catalog_category: %w", err)
	}

	return nil
}
