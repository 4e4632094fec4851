package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/utils"
	"github.com/eventforge/backend/pkg/logger"
	"go.uber.org/zap"
)

// TokenStrategy accepts "Authorization: Bearer <jwt>". A valid signature is
// not enough: the account named by the token must still exist.
type TokenStrategy struct {
	Secret string
	Users  repository.UserRepository
}

func (s *TokenStrategy) Name() string { return "token" }

func (s *TokenStrategy) ResolveIdentity(r *http.Request) (*Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrNoCredentials
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, ErrInvalidFormat
	}

	claims, err := utils.ValidateToken(parts[1], s.Secret)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, utils.ErrExpiredToken) {
			reason = "expired"
		}
		logger.Log.Debug("Bearer token rejected",
			zap.String("reason", reason),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	user, err := s.Users.GetByID(r.Context(), claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Log.Debug("Bearer token for deleted user",
			zap.Uint("user_id", claims.UserID),
		)
		return nil, fmt.Errorf("%w: token user %d no longer exists", ErrInvalidCredentials, claims.UserID)
	}
	if err != nil {
		return nil, err
	}

	return &Identity{ID: user.ID, Username: user.Username}, nil
}
