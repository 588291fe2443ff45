package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/auth"
)

// AuthService defines the interface for account registration and login
type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore  UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account with the default user role. Duplicate
// username and email are checked up front so the caller gets a specific
// error; the unique constraints still back this up under races.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) error {
	taken, err := s.userStore.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return apperrors.ErrUsernameExists
	}

	taken, err = s.userStore.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return apperrors.ErrUsernameExists
		}
		if errors.Is(err, repositories.ErrEmailTaken) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("User registered")
	return nil
}

// Login verifies credentials and returns the user with a signed access
// token. A missing user and a wrong password produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}
