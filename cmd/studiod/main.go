package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studio-listing-backend/config"
	"studio-listing-backend/internal/api"
	"studio-listing-backend/internal/db"
	"studio-listing-backend/internal/seed"
	"studio-listing-backend/internal/store"
	"studio-listing-backend/internal/studio"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "studio-api ", log.LstdFlags)

	loadDotEnv(logger, ".env")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded from %s", configPath)

	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)

	// Seed before the server accepts any request.
	if cfg.Seed.Skip {
		logger.Println("seeding disabled by configuration")
	} else if _, err := seed.Run(ctx, appStore); err != nil {
		logger.Fatalf("failed to seed sample studios: %v", err)
	}

	router := api.NewRouter(studio.NewService(appStore), cfg.Server.CORSAllowedOrigins, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Println("Server gracefully stopped")
}

// loadDotEnv reads path into the process environment. A missing file is
// normal outside local development.
func loadDotEnv(logger *log.Logger, path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Println("no .env file found; using process environment")
	default:
		logger.Printf("failed to load %s: %v", path, err)
	}
}
