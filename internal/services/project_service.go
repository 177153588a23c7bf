package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/samber/oops"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	tasks       *TaskService
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository, tasks *TaskService) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tasks:       tasks,
	}
}

// ProjectInput represents input for creating or updating a project. The
// manager is referenced by user name.
type ProjectInput struct {
	ProjectCode     string
	ProjectName     string
	ProjectDetail   string
	StartDate       time.Time
	EndDate         time.Time
	AssignedManager string
}

// ProjectDetails is a project with its live task counts.
type ProjectDetails struct {
	models.Project
	CompleteTaskCount   int64
	UnfinishedTaskCount int64
}

func (s *ProjectService) GetByCode(ctx context.Context, code string) (*models.Project, error) {
	project, err := s.projectRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find project").With("project_code", code).Wrap(err)
	}
	return project, nil
}

// ListAll returns every live project sorted by code.
func (s *ProjectService) ListAll(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list projects").Wrap(err)
	}
	return projects, nil
}

// ListNonCompleted returns the live projects that are not COMPLETE.
func (s *ProjectService) ListNonCompleted(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.ListNonCompleted(ctx)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list open projects").Wrap(err)
	}
	return projects, nil
}

func (s *ProjectService) findManager(ctx context.Context, username string) (*models.User, error) {
	manager, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find manager").With("user_name", username).Wrap(err)
	}
	return manager, nil
}

// Create stores a new OPEN project.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*models.Project, error) {
	if _, err := s.GetByCode(ctx, input.ProjectCode); err == nil {
		return nil, ErrDuplicateProjectCode
	} else if !errors.Is(err, ErrProjectNotFound) {
		return nil, err
	}

	manager, err := s.findManager(ctx, input.AssignedManager)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		ProjectCode:       input.ProjectCode,
		ProjectName:       input.ProjectName,
		ProjectDetail:     input.ProjectDetail,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		ProjectStatus:     models.StatusOpen,
		AssignedManagerID: manager.ID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateProjectCode
		}
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "create project").Wrap(err)
	}

	project.AssignedManager = *manager
	return project, nil
}

// Update overwrites the project identified by input.ProjectCode, keeping its
// current status.
func (s *ProjectService) Update(ctx context.Context, input ProjectInput) (*models.Project, error) {
	project, err := s.GetByCode(ctx, input.ProjectCode)
	if err != nil {
		return nil, err
	}

	manager, err := s.findManager(ctx, input.AssignedManager)
	if err != nil {
		return nil, err
	}

	project.ProjectName = input.ProjectName
	project.ProjectDetail = input.ProjectDetail
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.AssignedManagerID = manager.ID
	project.AssignedManager = *manager

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "update project").With("project_code", project.ProjectCode).Wrap(err)
	}
	return project, nil
}

// Delete soft-deletes the project, frees its code and soft-deletes its tasks.
func (s *ProjectService) Delete(ctx context.Context, code string) error {
	project, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := s.projectRepo.SoftDelete(ctx, project); err != nil {
		return oops.Code("DB_WRITE_FAILED").With("operation", "delete project").With("project_code", code).Wrap(err)
	}

	failed, err := s.tasks.DeleteByProject(ctx, project.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete tasks of project", "project_id", project.ID, "error", err)
		return nil
	}
	if failed > 0 {
		slog.WarnContext(ctx, "some tasks of deleted project were left in place", "project_id", project.ID, "failed", failed)
	}
	return nil
}

// Complete marks the project COMPLETE. Completing twice is a no-op.
func (s *ProjectService) Complete(ctx context.Context, code string) (*models.Project, error) {
	project, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if project.ProjectStatus == models.StatusComplete {
		return project, nil
	}

	project.ProjectStatus = models.StatusComplete
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "complete project").With("project_code", code).Wrap(err)
	}
	return project, nil
}

// ListAllDetails returns the caller's projects with their task counts.
func (s *ProjectService) ListAllDetails(ctx context.Context, caller auth.Identity) ([]ProjectDetails, error) {
	manager, err := s.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find manager").With("user_id", caller.ID).Wrap(err)
	}

	projects, err := s.projectRepo.ListByManager(ctx, manager.ID)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list manager projects").With("user_id", manager.ID).Wrap(err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjectsAssigned
	}

	details := make([]ProjectDetails, 0, len(projects))
	for _, project := range projects {
		completed, err := s.tasks.TotalCompleted(ctx, project.ProjectCode)
		if err != nil {
			return nil, err
		}
		unfinished, err := s.tasks.TotalNonCompleted(ctx, project.ProjectCode)
		if err != nil {
			return nil, err
		}

		details = append(details, ProjectDetails{
			Project:             project,
			CompleteTaskCount:   completed,
			UnfinishedTaskCount: unfinished,
		})
	}
	return details, nil
}
