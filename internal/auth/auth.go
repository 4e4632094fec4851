// Package auth resolves the identity behind a request. A Strategy knows one
// way of presenting credentials (bearer token, session cookie); Chain lets
// several coexist.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/repository"
)

var (
	ErrNoCredentials      = errors.New("no credentials presented")
	ErrInvalidFormat      = errors.New("malformed credentials")
	ErrInvalidCredentials = errors.New("invalid or expired credentials")
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Strategy resolves the identity behind a request.
// It returns ErrNoCredentials when the request carries nothing it understands,
// ErrInvalidFormat or ErrInvalidCredentials when it does but they are unusable,
// and any other error when the identity could not be checked at all.
type Strategy interface {
	Name() string
	ResolveIdentity(r *http.Request) (*Identity, error)
}

// Chain tries each strategy in order. The first one that finds
// credentials decides the outcome.
type Chain []Strategy

func (c Chain) Name() string { return "chain" }

func (c Chain) ResolveIdentity(r *http.Request) (*Identity, error) {
	for _, s := range c {
		identity, err := s.ResolveIdentity(r)
		if errors.Is(err, ErrNoCredentials) {
			continue
		}
		return identity, err
	}
	return nil, ErrNoCredentials
}

// NewStrategy builds the strategy selected by AUTH_MODE. sessions may be nil
// when session auth is disabled.
func NewStrategy(cfg *config.Config, sessions *scs.SessionManager, users repository.UserRepository) (Strategy, error) {
	token := &TokenStrategy{Secret: cfg.JWTSecret, Users: users}

	if cfg.SessionAuthEnabled() && sessions == nil {
		return nil, fmt.Errorf("AUTH_MODE=%s requires a session manager", cfg.AuthMode)
	}

	switch cfg.AuthMode {
	case config.AuthModeToken:
		return token, nil
	case config.AuthModeSession:
		return &SessionStrategy{Sessions: sessions, Users: users}, nil
	case config.AuthModeBoth:
		return Chain{token, &SessionStrategy{Sessions: sessions, Users: users}}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	return identity, ok && identity != nil
}
