package service

import (
	"context"
	"errors"
	"time"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/utils"
	"github.com/eventforge/backend/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)

type AuthService struct {
	users         repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// TokenTTL is how long issued tokens stay valid.
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtExpiration
}

// Register creates an account and signs a token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	start := time.Now()

	logger.Log.Debug("Processing user registration",
		zap.String("username", username),
	)

	user, err := s.createUser(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User registered successfully",
		zap.Uint("user_id", user.ID),
		zap.String("username", username),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	start := time.Now()

	logger.Log.Debug("Processing user login",
		zap.String("username", username),
	)

	// 1. Get user by username
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Log.Warn("Login failed: user not found",
			zap.String("username", username),
		)
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Error("Failed to get user by username",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}

	// 2. Verify password
	verifyStart := time.Now()
	valid := utils.VerifyPassword(password, user.Password)
	verifyDuration := time.Since(verifyStart)

	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("username", username),
			zap.Uint("user_id", user.ID),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 3. Generate JWT token
	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Duration("password_verify_duration", verifyDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

// CurrentUser loads the account behind an authenticated identity.
// A deleted account yields repository.ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Log.Error("Failed to load current user",
				zap.Uint("user_id", id),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every admin account ordered by id
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	logger.Log.Debug("Fetching all users")

	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch all users",
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Debug("Fetched all users",
		zap.Int("count", len(users)),
	)

	return users, nil
}

// CreateUser adds an admin account on behalf of another admin.
func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.createUser(ctx, username, password)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("User created by admin",
		zap.Uint("user_id", user.ID),
		zap.String("username", username),
	)
	return user, nil
}

// DeleteUser removes targetID. Admins cannot delete themselves.
func (s *AuthService) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	logger.Log.Info("Deleting user",
		zap.Uint("user_id", targetID),
		zap.Uint("admin_id", actorID),
	)

	if actorID == targetID {
		logger.Log.Warn("Rejected self-deletion",
			zap.Uint("user_id", actorID),
		)
		return ErrSelfDelete
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("User to delete not found",
				zap.Uint("user_id", targetID),
			)
		} else {
			logger.Log.Error("Failed to delete user",
				zap.Uint("user_id", targetID),
				zap.Error(err),
			)
		}
		return err
	}

	logger.Log.Info("User deleted successfully",
		zap.Uint("user_id", targetID),
		zap.Uint("admin_id", actorID),
	)

	return nil
}

func (s *AuthService) createUser(ctx context.Context, username, password string) (*models.User, error) {
	// 1. Check if username already exists
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		logger.Log.Warn("Username already exists",
			zap.String("username", username),
		)
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	// 2. Hash password (Argon2)
	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Debug("Password hashed successfully",
		zap.Duration("hash_duration", time.Since(hashStart)),
	)

	// 3. Create user; a concurrent registration can still win the race
	user := &models.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		logger.Log.Error("Failed to create user in database",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	return user, nil
}
