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

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ProjectCode      string
	AssignedEmployee string
	TaskSubject      string
	TaskDetail       string
}

// UpdateTaskInput represents input for updating a task. The status is not
// part of it; use UpdateStatus.
type UpdateTaskInput struct {
	ID               uint64
	ProjectCode      string
	AssignedEmployee string
	TaskSubject      string
	TaskDetail       string
}

// UpdateStatusInput represents a status change of a single task
type UpdateStatusInput struct {
	ID     uint64
	Status models.Status
}

func (s *TaskService) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find task").With("task_id", id).Wrap(err)
	}
	return task, nil
}

func (s *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list tasks").Wrap(err)
	}
	return tasks, nil
}

func (s *TaskService) resolve(ctx context.Context, projectCode, employee string) (*models.Project, *models.User, error) {
	project, err := s.projectRepo.FindByCode(ctx, projectCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, oops.Code("DB_QUERY_FAILED").With("operation", "find project").With("project_code", projectCode).Wrap(err)
	}

	user, err := s.userRepo.FindByUsername(ctx, employee)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, oops.Code("DB_QUERY_FAILED").With("operation", "find employee").With("user_name", employee).Wrap(err)
	}

	return project, user, nil
}

// Create stores an OPEN task assigned today.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	project, employee, err := s.resolve(ctx, input.ProjectCode, input.AssignedEmployee)
	if err != nil {
		return nil, err
	}

	now := s.now()
	task := &models.Task{
		ProjectID:          project.ID,
		AssignedEmployeeID: employee.ID,
		TaskSubject:        input.TaskSubject,
		TaskDetail:         input.TaskDetail,
		TaskStatus:         models.StatusOpen,
		AssignedDate:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "create task").Wrap(err)
	}

	task.Project = *project
	task.AssignedEmployee = *employee
	return task, nil
}

// Update changes the subject, detail, project and assignee of a task while
// keeping its status and assigned date.
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	project, employee, err := s.resolve(ctx, input.ProjectCode, input.AssignedEmployee)
	if err != nil {
		return nil, err
	}

	task.ProjectID = project.ID
	task.Project = *project
	task.AssignedEmployeeID = employee.ID
	task.AssignedEmployee = *employee
	task.TaskSubject = input.TaskSubject
	task.TaskDetail = input.TaskDetail

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "update task").With("task_id", task.ID).Wrap(err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.taskRepo.SoftDelete(ctx, id); err != nil {
		return oops.Code("DB_WRITE_FAILED").With("operation", "delete task").With("task_id", id).Wrap(err)
	}
	return nil
}

// TotalCompleted counts the live COMPLETE tasks of the project with code.
func (s *TaskService) TotalCompleted(ctx context.Context, code string) (int64, error) {
	return s.count(ctx, code, true)
}

// TotalNonCompleted counts the live tasks of the project with code that are not COMPLETE.
func (s *TaskService) TotalNonCompleted(ctx context.Context, code string) (int64, error) {
	return s.count(ctx, code, false)
}

func (s *TaskService) count(ctx context.Context, code string, completed bool) (int64, error) {
	count, err := s.taskRepo.CountByProjectCode(ctx, code, completed)
	if err != nil {
		return 0, oops.Code("DB_QUERY_FAILED").With("operation", "count tasks").With("project_code", code).Wrap(err)
	}
	return count, nil
}

// DeleteByProject soft-deletes every task of the project. Individual failures
// are logged and skipped; the number of tasks left undeleted is returned.
func (s *TaskService) DeleteByProject(ctx context.Context, projectID uint64) (int, error) {
	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return 0, oops.Code("DB_QUERY_FAILED").With("operation", "list project tasks").With("project_id", projectID).Wrap(err)
	}

	failed := 0
	for _, task := range tasks {
		if err := s.taskRepo.SoftDelete(ctx, task.ID); err != nil {
			failed++
			slog.WarnContext(ctx, "failed to delete task of project",
				"project_id", projectID,
				"task_id", task.ID,
				"error", err,
			)
		}
	}
	return failed, nil
}

// ListByProjectManager returns the tasks of projects managed by the caller.
func (s *TaskService) ListByProjectManager(ctx context.Context, caller auth.Identity) ([]models.Task, error) {
	manager, err := s.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "find manager").With("user_id", caller.ID).Wrap(err)
	}

	tasks, err := s.taskRepo.ListByManager(ctx, manager.ID)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list manager tasks").With("user_id", manager.ID).Wrap(err)
	}
	return tasks, nil
}

// ListPendingForEmployee returns the caller's tasks that are not COMPLETE.
func (s *TaskService) ListPendingForEmployee(ctx context.Context, caller auth.Identity) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListPendingByEmployee(ctx, caller.ID)
	if err != nil {
		return nil, oops.Code("DB_QUERY_FAILED").With("operation", "list pending tasks").With("user_id", caller.ID).Wrap(err)
	}
	return tasks, nil
}

// UpdateStatus moves a task to a new status. Employees may only move their
// own tasks, and a COMPLETE task stays COMPLETE.
func (s *TaskService) UpdateStatus(ctx context.Context, caller auth.Identity, input UpdateStatusInput) (*models.Task, error) {
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if caller.HasRole(models.RoleEmployee) && task.AssignedEmployeeID != caller.ID {
		return nil, ErrAccessDenied
	}

	if task.TaskStatus == models.StatusComplete && input.Status != models.StatusComplete {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.taskRepo.UpdateStatus(ctx, task.ID, input.Status); err != nil {
		return nil, oops.Code("DB_WRITE_FAILED").With("operation", "update task status").With("task_id", task.ID).Wrap(err)
	}

	task.TaskStatus = input.Status
	return task, nil
}
