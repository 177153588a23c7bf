package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/mail"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// ConfirmationService issues, mails and redeems account confirmation tokens.
type ConfirmationService struct {
	tokenRepo repository.ConfirmationTokenRepository
	mailer    mail.Mailer
	baseURL   string
	now       func() time.Time
}

// NewConfirmationService creates a new ConfirmationService. baseURL is the
// public address the confirmation link points at.
func NewConfirmationService(tokenRepo repository.ConfirmationTokenRepository, mailer mail.Mailer, baseURL string) *ConfirmationService {
	return &ConfirmationService{
		tokenRepo: tokenRepo,
		mailer:    mailer,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
}

// Issue stores a fresh token for user that expires after one day.
func (s *ConfirmationService) Issue(ctx context.Context, user *models.User) (*models.ConfirmationToken, error) {
	now := s.now()
	token := &models.ConfirmationToken{
		Token:      uuid.NewString(),
		UserID:     user.ID,
		ExpireDate: now.Add(constants.ConfirmationTokenTTL),
		CreatedAt:  now,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "create confirmation token").With("user_id", user.ID).Wrap(err)
	}

	return token, nil
}

// Link returns the confirmation URL for token.
func (s *ConfirmationService) Link(token *models.ConfirmationToken) string {
	return fmt.Sprintf("%s/confirmation?token=%s", s.baseURL, token.Token)
}

// SendConfirmation mails the confirmation link to the user.
func (s *ConfirmationService) SendConfirmation(ctx context.Context, user *models.User, token *models.ConfirmationToken) error {
	msg := mail.Message{
		To:      user.UserName,
		Subject: constants.ConfirmationMailSubject,
		Body:    "To confirm your account, please click here : " + s.Link(token),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return oops.Code("MAIL_SEND_FAILED").With("user_id", user.ID).Wrap(err)
	}
	return nil
}

// Redeem enables the user owning value and consumes the token. Expired and
// already used tokens are reported as ErrTokenNotFound.
func (s *ConfirmationService) Redeem(ctx context.Context, value string) (*models.User, error) {
	token, err := s.tokenRepo.FindActive(ctx, value, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find confirmation token").Wrap(err)
	}

	if err := s.tokenRepo.Redeem(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "redeem confirmation token").Wrap(err)
	}

	user := token.User
	user.Enabled = true
	return &user, nil
}
