package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/samber/oops"
)

// UserService handles user business logic
type UserService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	projectRepo   repository.ProjectRepository
	taskRepo      repository.TaskRepository
	confirmations *ConfirmationService
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	confirmations *ConfirmationService,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
		confirmations: confirmations,
	}
}

// CreateUserInput represents input for registering a user
type CreateUserInput struct {
	UserName  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    models.Gender
	RoleID    uint64
	// Enabled skips the confirmation mail. Only used for bootstrap accounts.
	Enabled bool
}

// UpdateUserInput represents input for updating a user identified by UserName
type UpdateUserInput struct {
	UserName  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    models.Gender
	RoleID    uint64
}

func (s *UserService) find(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find user").With("user_name", username).Wrap(err)
	}
	return user, nil
}

func checkAccess(caller auth.Identity, user *models.User) error {
	if caller.ID == user.ID || caller.HasRole(models.RoleAdmin) {
		return nil
	}
	return ErrAccessDenied
}

// FindByUsername returns the user when the caller is that user or an Admin.
func (s *UserService) FindByUsername(ctx context.Context, caller auth.Identity, username string) (*models.User, error) {
	user, err := s.find(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(caller, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAll returns every live user sorted by first name.
func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list users").Wrap(err)
	}
	return users, nil
}

// ListByRole returns live users whose role matches role, ignoring case.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list users by role").With("role", role).Wrap(err)
	}
	return users, nil
}

// Create registers a disabled user and mails a confirmation link. A mail
// failure is logged and does not undo the registration.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if _, err := s.find(ctx, input.UserName); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, input.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find role").Wrap(err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}

	user := &models.User{
		UserName:  input.UserName,
		PassWord:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Gender:    input.Gender,
		RoleID:    role.ID,
		Enabled:   input.Enabled,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "create user").Wrap(err)
	}
	user.Role = *role

	if user.Enabled || s.confirmations == nil {
		return user, nil
	}

	token, err := s.confirmations.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.confirmations.SendConfirmation(ctx, user, token); err != nil {
		slog.WarnContext(ctx, "failed to send confirmation email", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Update overwrites the profile of the user named in input. The password is
// always re-hashed and the account stays enabled. Only Admins may change roles.
func (s *UserService) Update(ctx context.Context, caller auth.Identity, input UpdateUserInput) (*models.User, error) {
	user, err := s.find(ctx, input.UserName)
	if err != nil {
		return nil, err
	}

	if !user.Enabled {
		return nil, ErrAccountNotConfirmed
	}

	if err := checkAccess(caller, user); err != nil {
		return nil, err
	}

	if caller.HasRole(models.RoleAdmin) && input.RoleID != 0 && input.RoleID != user.RoleID {
		role, err := s.roleRepo.FindByID(ctx, input.RoleID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRoleNotFound
			}
			return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find role").Wrap(err)
		}
		user.RoleID = role.ID
		user.Role = *role
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}

	user.PassWord = hash
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Gender = input.Gender
	user.Enabled = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "update user").With("user_id", user.ID).Wrap(err)
	}

	return user, nil
}

// Delete soft-deletes the user unless it still manages projects or is
// assigned tasks.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.find(ctx, username)
	if err != nil {
		return err
	}

	linked, err := s.hasActiveWork(ctx, user)
	if err != nil {
		return err
	}
	if linked {
		return ErrUserLinkedToActiveWork
	}

	if err := s.userRepo.SoftDelete(ctx, user); err != nil {
		return oops.Code("DB_WRITE_FAILED").With("operation", "delete user").With("user_id", user.ID).Wrap(err)
	}
	return nil
}

func (s *UserService) hasActiveWork(ctx context.Context, user *models.User) (bool, error) {
	switch {
	case user.HasRole(models.RoleManager):
		count, err := s.projectRepo.CountByManager(ctx, user.ID)
		if err != nil {
			return false, oops.Code("DB_QUERY_FAILED").With("operation", "count projects").With("user_id", user.ID).Wrap(err)
		}
		return count > 0, nil
	case user.HasRole(models.RoleEmployee):
		count, err := s.taskRepo.CountByEmployee(ctx, user.ID)
		if err != nil {
			return false, oops.Code("DB_QUERY_FAILED").With("operation", "count tasks").With("user_id", user.ID).Wrap(err)
		}
		return count > 0, nil
	}
	return false, nil
}

// Confirm enables the user's account.
func (s *UserService) Confirm(ctx context.Context, user *models.User) error {
	user.Enabled = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return oops.Code("DB_WRITE_FAILED").With("operation", "confirm user").With("user_id", user.ID).Wrap(err)
	}
	return nil
}
