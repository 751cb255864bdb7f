package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"boardhub/internal/assets"
	"boardhub/internal/auth"
	"boardhub/internal/config"
	"boardhub/internal/handler"
	"boardhub/internal/middleware"
	"boardhub/internal/repository/postgres"
	"boardhub/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Identity provider verification
	resolver, err := auth.NewIdentityResolver(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create identity resolver: %v", err)
	}
	defer resolver.Close()

	// Database
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	boardRepo := postgres.NewBoardRepository(repoConfig)
	favRepo := postgres.NewFavouriteRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Placeholder image palette
	palette, err := assets.LoadPalette()
	if err != nil {
		log.Fatalf("Failed to load placeholder palette: %v", err)
	}

	// Services and handlers
	boardService := service.NewBoardService(boardRepo, favRepo, txManager, palette, rand.IntN, logger)
	boardHandler := handler.NewBoardHandler(boardService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ method patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("POST /api/boards", boardHandler.CreateBoard)
	mux.HandleFunc("GET /api/boards", boardHandler.ListBoards)
	mux.HandleFunc("GET /api/boards/{id}", boardHandler.GetBoard)
	mux.HandleFunc("PATCH /api/boards/{id}", boardHandler.UpdateBoard)
	mux.HandleFunc("DELETE /api/boards/{id}", boardHandler.DeleteBoard)
	mux.HandleFunc("POST /api/boards/{id}/favourite", boardHandler.FavouriteBoard)
	mux.HandleFunc("DELETE /api/boards/{id}/favourite", boardHandler.UnfavouriteBoard)

	// Middleware chain, applied in reverse order: CORS → Recovery → Auth → routes
	var h http.Handler = mux
	h = middleware.Auth(resolver, logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS must sit outside auth to answer OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
