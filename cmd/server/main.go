package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"recipe-pantry-api/internal/client"
	"recipe-pantry-api/internal/config"
	"recipe-pantry-api/internal/database"
	"recipe-pantry-api/internal/handler"
	"recipe-pantry-api/internal/matching"
	"recipe-pantry-api/internal/repository"
	"recipe-pantry-api/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("starting recipe-pantry-api")

	cfg := config.Load()

	ctx := context.Background()

	slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connection established")

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	recipeRepo := repository.NewRecipeRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)

	// Services
	reportCache, err := service.NewReportCache()
	if err != nil {
		slog.Error("failed to create report cache", "error", err)
		os.Exit(1)
	}
	defer reportCache.Close()

	matcher := matching.NewMatcher(matching.DefaultParams())
	compatSvc := service.NewCompatService(recipeRepo, inventoryRepo, catalogRepo, matcher, reportCache, logger)
	resolverSvc := service.NewResolverService(catalogRepo, cfg.ResolveThreshold, logger)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	recipeHandler := handler.NewRecipeHandler(recipeRepo)
	compatHandler := handler.NewCompatHandler(compatSvc)
	inventoryHandler := handler.NewInventoryHandler(inventoryRepo, resolverSvc)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/recipes", recipeHandler.List)
		r.Post("/recipes", recipeHandler.Create)
		r.Get("/recipes/ranked", compatHandler.Ranked)
		r.Get("/recipes/{id}", recipeHandler.Get)
		r.Delete("/recipes/{id}", recipeHandler.Delete)
		r.Get("/recipes/{id}/compatibility", compatHandler.Report)
		r.Get("/recipes/{id}/shopping-list", compatHandler.ShoppingList)

		r.Get("/inventory", inventoryHandler.List)
		r.Post("/inventory", inventoryHandler.Add)
		r.Delete("/inventory/{id}", inventoryHandler.Remove)

		r.Get("/catalog", catalogHandler.List)
		r.Post("/catalog", catalogHandler.Add)

		// Suggestions need an API key; leave the route off otherwise.
		if cfg.OpenAI.APIKey != "" {
			suggester := client.NewOpenAIClient(
				cfg.OpenAI.APIKey,
				cfg.OpenAI.BaseURL,
				cfg.OpenAI.Model,
				cfg.OpenAI.RequestsPerMinute,
				logger,
			)
			suggestHandler := handler.NewSuggestHandler(compatSvc, suggester)
			r.Post("/suggestions", suggestHandler.Suggest)
			slog.Info("suggestion endpoint enabled", "model", cfg.OpenAI.Model)
		}
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
