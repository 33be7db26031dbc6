package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-management/config"
	_ "task-management/docs" // Swagger docs
	"task-management/internal/httpserver"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
	"task-management/pkg/sqlite"
)

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs --parseInternal

// @title       Task Management API
// @description Lists and items with filtered, paginated queries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Filter date parser
	dateParser, err := datemath.NewParser(cfg.Filter.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Filter.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 4. Database
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		DB:              db,
		DateParser:      dateParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
