package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	AuthModeToken   = "token"
	AuthModeSession = "session"
	AuthModeBoth    = "both"

	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"

	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
	SessionStoreMemory   = "memory"
)

// MinJWTSecretLength is the minimum signing secret length accepted in production.
const MinJWTSecretLength = 32

// knownWeakSecrets are example values that must never sign production tokens.
var knownWeakSecrets = []string{
	"eventforge-secret-key",
	"change-me",
	"secret",
}

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:":5000"`

	// Relational store
	StoreDriver       string        `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBQueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`
	SeedSampleData    bool          `env:"SEED_SAMPLE_DATA" envDefault:"true"`

	// Authentication
	AuthMode  string        `env:"AUTH_MODE" envDefault:"token"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// Sessions
	SessionSecret   string        `env:"SESSION_SECRET"`
	SessionStore    string        `env:"SESSION_STORE" envDefault:"database"`
	SessionLifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"24h"`
	RedisURL        string        `env:"REDIS_URL"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// JWTSecretGenerated is set when JWT_SECRET was missing and a random
	// per-process secret was generated instead.
	JWTSecretGenerated bool `env:"-"`
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// TokenAuthEnabled reports whether bearer tokens are accepted.
func (c *Config) TokenAuthEnabled() bool {
	return c.AuthMode == AuthModeToken || c.AuthMode == AuthModeBoth
}

// SessionAuthEnabled reports whether cookie sessions are accepted.
func (c *Config) SessionAuthEnabled() bool {
	return c.AuthMode == AuthModeSession || c.AuthMode == AuthModeBoth
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	// (Docker containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := cfg.resolveJWTSecret(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, "test":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, production or test, got %q", c.Environment)
	}

	switch c.AuthMode {
	case AuthModeToken, AuthModeSession, AuthModeBoth:
	default:
		return fmt.Errorf("AUTH_MODE must be token, session or both, got %q", c.AuthMode)
	}

	switch c.StoreDriver {
	case StorePostgres, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be postgres, sqlite or memory, got %q", c.StoreDriver)
	}

	switch c.SessionStore {
	case SessionStoreDatabase, SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("SESSION_STORE must be database, redis or memory, got %q", c.SessionStore)
	}

	if c.SessionAuthEnabled() && c.SessionStore == SessionStoreRedis && c.RedisURL == "" {
		return errors.New("SESSION_STORE=redis requires REDIS_URL")
	}
	if c.SessionAuthEnabled() && c.SessionStore == SessionStoreDatabase && c.StoreDriver == StoreMemory {
		return errors.New("SESSION_STORE=database cannot be used with STORE_DRIVER=memory")
	}

	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %s", c.JWTExpiry)
	}
	if c.DBQueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive, got %s", c.DBQueryTimeout)
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.DBMaxOpenConns)
	}

	return nil
}

// resolveJWTSecret rejects weak secrets in production and falls back to a
// random per-process secret everywhere else.
func (c *Config) resolveJWTSecret() error {
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production; " +
				"generate one with: openssl rand -base64 32")
		}
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("generating fallback JWT secret: %w", err)
		}
		c.JWTSecret = secret
		c.JWTSecretGenerated = true
		return nil
	}

	if !c.IsProduction() {
		return nil
	}

	for _, weak := range knownWeakSecrets {
		if strings.EqualFold(c.JWTSecret, weak) {
			return errors.New("JWT_SECRET is a known default value and must not be used in production")
		}
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes long in production, got %d bytes",
			MinJWTSecretLength, len(c.JWTSecret))
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
