package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"skyfolio/internal/core/apperror"
	"skyfolio/pkg/logger"
)

// Service provides login for site owners.
type Service struct {
	users UserRepository
	jwt   *JWTService
}

// NewService creates an auth service.
func NewService(users UserRepository, jwt *JWTService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies credentials and issues an access token.
// Unknown emails and wrong passwords produce the same error so the
// endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		logger.Warn(ctx, "login failed: user lookup", "email", email, "error", err)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn(ctx, "login failed: password mismatch", "email", email)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		DisplayName: user.DisplayName,
	}, nil
}
