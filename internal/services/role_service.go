package services

import (
	"context"
	"errors"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/samber/oops"
)

// RoleService exposes the fixed role set
type RoleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

func (s *RoleService) ListAll(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list roles").Wrap(err)
	}
	return roles, nil
}

func (s *RoleService) FindByID(ctx context.Context, id uint64) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find role").With("role_id", id).Wrap(err)
	}
	return role, nil
}

// FindByDescription resolves a role by its case-insensitive description.
func (s *RoleService) FindByDescription(ctx context.Context, description string) (*models.Role, error) {
	role, err := s.roleRepo.FindByDescription(ctx, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find role").With("description", description).Wrap(err)
	}
	return role, nil
}
