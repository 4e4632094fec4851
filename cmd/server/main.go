package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/database"
	"github.com/eventforge/backend/internal/handler"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/repository/memory"
	"github.com/eventforge/backend/internal/seed"
	"github.com/eventforge/backend/internal/session"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Log.Info("Config loaded successfully",
		zap.String("environment", cfg.Environment),
		zap.String("store", cfg.StoreDriver),
		zap.String("auth_mode", cfg.AuthMode),
	)
	if cfg.JWTSecretGenerated {
		logger.Log.Error("JWT_SECRET is not set; using a random secret for this process",
			zap.String("effect", "tokens stop validating on restart"),
			zap.String("hint", "generate one with: openssl rand -base64 32"),
		)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize store
	store, gormDB, closeStore := openStore(ctx, cfg)
	defer closeStore()

	// Initialize Redis (optional)
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			if cfg.SessionAuthEnabled() && cfg.SessionStore == config.SessionStoreRedis {
				logger.Log.Fatal("Redis is required for the session store", zap.Error(err))
			}
			logger.Log.Error("Redis unavailable; continuing without it", zap.Error(err))
		} else {
			defer rdb.Close()
		}
	}

	// Initialize sessions
	var sessions *scs.SessionManager
	if cfg.SessionAuthEnabled() {
		sessions, err = session.New(cfg, gormDB, rdb)
		if err != nil {
			logger.Log.Fatal("Failed to configure sessions", zap.Error(err))
		}
	}

	strategy, err := auth.NewStrategy(cfg, sessions, store.Users())
	if err != nil {
		logger.Log.Fatal("Failed to configure authentication", zap.Error(err))
	}

	router := handler.NewRouter(handler.Dependencies{
		Config:   cfg,
		Store:    store,
		Strategy: strategy,
		Sessions: sessions,
		Redis:    rdb,
	})

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("addr", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// openStore returns the repository store and, for relational drivers, the
// gorm handle the database session store shares. A database that is down at
// boot is not fatal: requests answer 503 and migration is retried on first use.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, *gorm.DB, func()) {
	if cfg.StoreDriver == config.StoreMemory {
		store := memory.NewStore()
		if cfg.SeedSampleData {
			if err := seed.Content(ctx, store); err != nil {
				logger.Log.Error("Failed to seed sample data", zap.Error(err))
			}
		}
		logger.Log.Warn("Using in-memory store; data is lost on restart")
		return store, nil, func() {}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to configure database", zap.Error(err))
	}

	migrateCtx, cancel := context.WithTimeout(ctx, cfg.DBQueryTimeout)
	defer cancel()
	if err := db.Migrate(migrateCtx); err != nil {
		logger.Log.Error("Database unreachable at startup; will retry on first request", zap.Error(err))
	}

	store := repository.NewGormStore(db.DB, db.EnsureMigrated)

	return store, db.DB, func() {
		if err := db.Close(); err != nil {
			logger.Log.Warn("Closing database", zap.Error(err))
		}
	}
}
