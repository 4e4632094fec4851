// Package session builds the scs session manager used for cookie auth.
package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/gormstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CookieName is the session cookie set on login.
const CookieName = "eventforge_session"

// New returns a session manager backed by the store named in SESSION_STORE.
// db is required for the database store, rdb for the redis store.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*scs.SessionManager, error) {
	sm := scs.New()
	sm.Lifetime = cfg.SessionLifetime
	sm.Cookie.Name = CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Path = "/"
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.IsProduction()
	sm.Cookie.Persist = true

	switch cfg.SessionStore {
	case config.SessionStoreDatabase:
		if db == nil {
			return nil, fmt.Errorf("session store %q needs a database", cfg.SessionStore)
		}
		sm.Store = &lazyStore{open: func() (scs.Store, error) { return gormstore.New(db) }}
	case config.SessionStoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("session store %q needs a redis client", cfg.SessionStore)
		}
		sm.Store = goredisstore.New(rdb)
	case config.SessionStoreMemory:
		sm.Store = memstore.New()
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}

	logger.Log.Info("Session manager configured",
		zap.String("store", cfg.SessionStore),
		zap.Duration("lifetime", cfg.SessionLifetime),
		zap.Bool("secure_cookie", sm.Cookie.Secure),
	)

	return sm, nil
}

// NewRedisClient parses a redis:// URL and checks the server answers.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// lazyStore opens the gorm session store on first use. gormstore migrates its
// table when constructed, which would fail while the database is unreachable.
type lazyStore struct {
	open func() (scs.Store, error)

	mu    sync.Mutex
	store scs.Store
}

func (l *lazyStore) get() (scs.Store, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		return l.store, nil
	}
	store, err := l.open()
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	l.store = store
	return store, nil
}

func (l *lazyStore) Find(token string) ([]byte, bool, error) {
	store, err := l.get()
	if err != nil {
		return nil, false, err
	}
	return store.Find(token)
}

func (l *lazyStore) Commit(token string, b []byte, expiry time.Time) error {
	store, err := l.get()
	if err != nil {
		return err
	}
	return store.Commit(token, b, expiry)
}

func (l *lazyStore) Delete(token string) error {
	store, err := l.get()
	if err != nil {
		return err
	}
	return store.Delete(token)
}
