package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConfirmationTokenRepository is a GORM implementation of ConfirmationTokenRepository
type GormConfirmationTokenRepository struct {
	db *gorm.DB
}

// NewConfirmationTokenRepository creates a new ConfirmationTokenRepository
func NewConfirmationTokenRepository(db *gorm.DB) ConfirmationTokenRepository {
	return &GormConfirmationTokenRepository{db: db}
}

func (r *GormConfirmationTokenRepository) Create(ctx context.Context, token *models.ConfirmationToken) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(token).Error
}

func (r *GormConfirmationTokenRepository) FindActive(ctx context.Context, value string, now time.Time) (*models.ConfirmationToken, error) {
	var token models.ConfirmationToken
	err := r.db.WithContext(ctx).
		Scopes(database.NotDeleted("confirmation_tokens")).
		Joins("JOIN users ON users.id = confirmation_tokens.user_id AND users.is_deleted = ?", false).
		Preload("User.Role").
		Where("confirmation_tokens.token = ?", value).
		Where("confirmation_tokens.expire_date > ?", now).
		First(&token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

// Redeem enables the user and marks the token used within a single transaction.
// A token whose user was deleted meanwhile is ErrNotFound and stays untouched.
func (r *GormConfirmationTokenRepository) Redeem(ctx context.Context, token *models.ConfirmationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND is_deleted = ?", token.UserID, false).
			Update("enabled", true)
		if res.Error != nil {
			return fmt.Errorf("enable user: %w", res.Error)
		}
		// MySQL reports unchanged rows as unaffected, so confirm the user is live.
		if res.RowsAffected == 0 {
			var live int64
			err := tx.Model(&models.User{}).
				Where("id = ? AND is_deleted = ?", token.UserID, false).
				Count(&live).Error
			if err != nil {
				return fmt.Errorf("find user: %w", err)
			}
			if live == 0 {
				return ErrNotFound
			}
		}

		res = tx.Model(&models.ConfirmationToken{}).
			Where("id = ? AND is_deleted = ?", token.ID, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return fmt.Errorf("delete token: %w", res.Error)
		}
		// A concurrent redemption already consumed it.
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
