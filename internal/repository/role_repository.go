package repository

import (
	"context"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"gorm.io/gorm"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRoleRepository) FindByID(ctx context.Context, id uint64) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByDescription(ctx context.Context, description string) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Where("LOWER(description) = LOWER(?)", description).First(&role).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}
