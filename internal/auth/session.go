package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/repository"
)

// Session keys
const (
	SessionUserIDKey   = "userID"
	SessionUsernameKey = "username"
)

// SessionStrategy reads the user stored in the scs session. The session must
// already be loaded into the request context (middleware.LoadSession).
type SessionStrategy struct {
	Sessions *scs.SessionManager
	Users    repository.UserRepository
}

func (s *SessionStrategy) Name() string { return "session" }

func (s *SessionStrategy) ResolveIdentity(r *http.Request) (*Identity, error) {
	ctx := r.Context()

	id := s.Sessions.GetInt(ctx, SessionUserIDKey)
	if id <= 0 {
		return nil, ErrNoCredentials
	}

	// The account may have been deleted since the session was issued.
	user, err := s.Users.GetByID(ctx, uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: session user %d no longer exists", ErrInvalidCredentials, id)
	}
	if err != nil {
		return nil, err
	}

	return &Identity{ID: user.ID, Username: user.Username}, nil
}

// StartSession binds identity to the session in ctx under a fresh token.
// The caller commits the session.
func StartSession(ctx context.Context, sessions *scs.SessionManager, identity *Identity) error {
	if err := sessions.RenewToken(ctx); err != nil {
		return err
	}
	sessions.Put(ctx, SessionUserIDKey, int(identity.ID))
	sessions.Put(ctx, SessionUsernameKey, identity.Username)
	return nil
}

// EndSession destroys the session in ctx and deletes it from the store.
func EndSession(ctx context.Context, sessions *scs.SessionManager) error {
	return sessions.Destroy(ctx)
}
