package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/database"
	"github.com/eventforge/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TestDatabase holds a migrated in-memory SQLite database
type TestDatabase struct {
	*database.Database
	DSN string
}

// TestRedis holds test Redis mock (miniredis)
type TestRedis struct {
	Server *miniredis.Miniredis
	URL    string
	Client *redis.Client
}

// TestConfig returns a config suitable for in-process tests.
func TestConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		ServerPort:         ":0",
		StoreDriver:        config.StoreSQLite,
		DBMaxOpenConns:     1,
		DBMaxIdleConns:     1,
		DBQueryTimeout:     5 * time.Second,
		AuthMode:           config.AuthModeBoth,
		JWTSecret:          "test-secret-key-for-integration-tests",
		JWTExpiry:          time.Hour,
		SessionStore:       config.SessionStoreMemory,
		SessionLifetime:    time.Hour,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

// SetupTestDatabase creates an in-memory SQLite database for integration tests.
// Every call gets its own named database, so tests never share rows.
// No Docker required! Fast and isolated.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	cfg := TestConfig()
	// A single pooled connection keeps the shared-cache database alive
	// for the whole test.
	cfg.DatabaseURL = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	td := &TestDatabase{Database: db, DSN: cfg.DatabaseURL}
	t.Cleanup(func() { td.Teardown(t) })
	return td
}

// Store returns a gorm-backed store over the test database.
func (td *TestDatabase) Store() *repository.GormStore {
	return repository.NewGormStore(td.DB, td.EnsureMigrated)
}

// Teardown cleans up the test database (closes connection)
func (td *TestDatabase) Teardown(t *testing.T) {
	if err := td.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// SetupTestRedis creates an in-memory Redis mock (miniredis)
// No Docker required! Fast and isolated.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	tr := &TestRedis{
		Server: server,
		URL:    fmt.Sprintf("redis://%s", server.Addr()),
		Client: client,
	}
	t.Cleanup(func() { tr.Teardown(t) })
	return tr
}

// Teardown cleans up the test Redis mock
func (tr *TestRedis) Teardown(t *testing.T) {
	_ = tr.Client.Close()
	tr.Server.Close()
}

// CleanDatabase deletes all records from tables (for test isolation)
func CleanDatabase(t *testing.T, td *TestDatabase) {
	// SQLite doesn't support TRUNCATE
	tables := []string{"contact_submissions", "testimonials", "portfolio_items", "users"}
	for _, table := range tables {
		if err := td.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to clean table %s: %v", table, err)
		}
	}
}
