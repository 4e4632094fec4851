package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/database"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/seed"
	"github.com/eventforge/backend/pkg/logger"
	"go.uber.org/zap"
)

const seedTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.StoreDriver == config.StoreMemory {
		logger.Log.Fatal("Seeding needs a relational store; set STORE_DRIVER to postgres or sqlite")
	}

	// Get admin credentials from env
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		logger.Log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_PASSWORD")
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to configure database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	store := repository.NewGormStore(db.DB, db.EnsureMigrated)

	admin, created, err := seed.Admin(ctx, store.Users(), adminUsername, adminPassword)
	if err != nil {
		logger.Log.Fatal("Failed to create admin", zap.Error(err))
	}
	if created {
		logger.Log.Info("Admin user created successfully", zap.String("username", admin.Username))
	} else {
		logger.Log.Info("Admin user already exists", zap.String("username", admin.Username))
	}

	if cfg.SeedSampleData {
		if err := seed.Content(ctx, store); err != nil {
			logger.Log.Fatal("Failed to seed sample content", zap.Error(err))
		}
	}
}
