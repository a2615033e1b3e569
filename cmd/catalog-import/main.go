package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"recipe-pantry-api/internal/config"
	"recipe-pantry-api/internal/database"
	"recipe-pantry-api/internal/repository"
)

// catalog-import seeds the global ingredient catalog from a JSON file
// shaped as {"category": ["name", ...], ...}. Inserts are idempotent,
// so re-running on an updated file only adds what is new.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	filePath := flag.String("file", "catalog.json", "path to the catalog JSON file")
	flag.Parse()

	cfg := config.Load()

	ctx := context.Background()

	byCategory, err := loadCatalogFile(*filePath)
	if err != nil {
		slog.Error("failed to load catalog file", "file", *filePath, "error", err)
		os.Exit(1)
	}

	total := 0
	for _, names := range byCategory {
		total += len(names)
	}
	slog.Info("catalog file loaded", "file", *filePath, "categories", len(byCategory), "ingredients", total)

	slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	catalogRepo := repository.NewCatalogRepo(db)

	startedAt := time.Now()
	inserted := 0
	skipped := 0
	failed := 0
	processed := 0

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		for _, name := range byCategory[cat] {
			processed++

			ok, err := catalogRepo.Add(ctx, cat, name)
			switch {
			case err != nil:
				failed++
				slog.Error("failed to insert ingredient", "category", cat, "name", name, "error", err)
			case ok:
				inserted++
			default:
				skipped++
			}

			if processed%100 == 0 {
				slog.Info("import progress",
					"processed", processed,
					"total", total,
					"inserted", inserted,
					"skipped", skipped,
					"failed", failed,
				)
			}
		}
	}

	slog.Info("import finished",
		"duration", time.Since(startedAt).Round(time.Millisecond),
		"processed", processed,
		"inserted", inserted,
		"skipped", skipped,
		"failed", failed,
	)

	if failed > 0 {
		os.Exit(1)
	}
}

func loadCatalogFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var byCategory map[string][]string
	if err := json.Unmarshal(data, &byCategory); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(byCategory) == 0 {
		return nil, fmt.Errorf("catalog file is empty")
	}

	return byCategory, nil
}
