package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
)

// ErrNotFound is returned when no live row matches the lookup.
var ErrNotFound = errors.New("repository: record not found")

// ErrDuplicate is returned when an insert collides with a unique index.
var ErrDuplicate = errors.New("repository: duplicate key")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a live user by ID with its role loaded
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a live user by user name with its role loaded
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns all live users sorted by first name
	List(ctx context.Context) ([]models.User, error)

	// ListByRole returns live users whose role description matches role, ignoring case
	ListByRole(ctx context.Context, role string) ([]models.User, error)

	// Update persists the user's own columns
	Update(ctx context.Context, user *models.User) error

	// SoftDelete flags the user deleted and renames it to <user_name>-<id>
	SoftDelete(ctx context.Context, user *models.User) error
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	List(ctx context.Context) ([]models.Role, error)
	FindByID(ctx context.Context, id uint64) (*models.Role, error)
	FindByDescription(ctx context.Context, description string) (*models.Role, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByCode finds a live project by code with its manager loaded
	FindByCode(ctx context.Context, code string) (*models.Project, error)

	// List returns all live projects sorted by code
	List(ctx context.Context) ([]models.Project, error)

	// ListByManager returns the live projects assigned to managerID
	ListByManager(ctx context.Context, managerID uint64) ([]models.Project, error)

	// ListNonCompleted returns live projects whose status is not COMPLETE
	ListNonCompleted(ctx context.Context) ([]models.Project, error)

	// CountByManager counts the live projects assigned to managerID
	CountByManager(ctx context.Context, managerID uint64) (int64, error)

	// Update persists the project's own columns
	Update(ctx context.Context, project *models.Project) error

	// SoftDelete flags the project deleted and renames its code to <code>-<id>
	SoftDelete(ctx context.Context, project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a live task by ID with project and employee loaded
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// List returns all live tasks
	List(ctx context.Context) ([]models.Task, error)

	// ListByProject returns the live tasks of projectID
	ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error)

	// ListByManager returns live tasks whose project is managed by managerID
	ListByManager(ctx context.Context, managerID uint64) ([]models.Task, error)

	// ListPendingByEmployee returns live, not completed tasks assigned to employeeID
	ListPendingByEmployee(ctx context.Context, employeeID uint64) ([]models.Task, error)

	// CountByEmployee counts the live tasks assigned to employeeID
	CountByEmployee(ctx context.Context, employeeID uint64) (int64, error)

	// CountByProjectCode counts live tasks of the project with the given code,
	// either those in COMPLETE status or all the others
	CountByProjectCode(ctx context.Context, code string, completed bool) (int64, error)

	// Update persists the task's own columns
	Update(ctx context.Context, task *models.Task) error

	// UpdateStatus changes only the status column
	UpdateStatus(ctx context.Context, id uint64, status models.Status) error

	// SoftDelete flags the task deleted
	SoftDelete(ctx context.Context, id uint64) error
}

// ConfirmationTokenRepository defines the interface for confirmation token data access
type ConfirmationTokenRepository interface {
	// Create stores a new token
	Create(ctx context.Context, token *models.ConfirmationToken) error

	// FindActive finds a live token by value that has not expired at now
	FindActive(ctx context.Context, value string, now time.Time) (*models.ConfirmationToken, error)

	// Redeem enables the token's user and deletes the token atomically
	Redeem(ctx context.Context, token *models.ConfirmationToken) error
}
