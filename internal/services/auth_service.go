package services

import (
	"context"
	"errors"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/samber/oops"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Authenticate verifies credentials and issues a session token for enabled users.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, oops.Code("DB_QUERY_FAILED").With("operation", "find user").Wrap(err)
	}

	if !auth.CheckPassword(password, user.PassWord) {
		return "", nil, ErrInvalidCredentials
	}

	if !user.Enabled {
		return "", nil, ErrAccountNotConfirmed
	}

	token, err := s.tokens.Generate(*user)
	if err != nil {
		return "", nil, oops.Code("TOKEN_SIGN_FAILED").With("user_id", user.ID).Wrap(err)
	}

	return token, user, nil
}

// Decode validates a session token and returns the identity it carries.
func (s *AuthService) Decode(token string) (*auth.Identity, error) {
	identity, err := s.tokens.Parse(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return identity, nil
}
