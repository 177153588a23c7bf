package repository

import (
	"context"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Scopes(database.NotDeleted("tasks")).
		Preload("Project.AssignedManager.Role").
		Preload("AssignedEmployee.Role")
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.live(ctx).Where("tasks.id = ?", id).First(&task).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *GormTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.live(ctx).Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Scopes(database.NotDeleted("tasks")).
		Where("tasks.project_id = ?", projectID).
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) ListByManager(ctx context.Context, managerID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.live(ctx).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Scopes(database.NotDeleted("projects")).
		Where("projects.assigned_manager_id = ?", managerID).
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) ListPendingByEmployee(ctx context.Context, employeeID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.live(ctx).
		Where("tasks.assigned_employee_id = ?", employeeID).
		Where("tasks.task_status <> ?", models.StatusComplete).
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) CountByEmployee(ctx context.Context, employeeID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Scopes(database.NotDeleted("tasks")).
		Where("tasks.assigned_employee_id = ?", employeeID).
		Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) CountByProjectCode(ctx context.Context, code string, completed bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Scopes(database.NotDeleted("tasks")).
		Where("projects.project_code = ?", code)

	if completed {
		query = query.Where("tasks.task_status = ?", models.StatusComplete)
	} else {
		query = query.Where("tasks.task_status <> ?", models.StatusComplete)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Update updates a task
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

func (r *GormTaskRepository) UpdateStatus(ctx context.Context, id uint64, status models.Status) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Update("task_status", status).Error
}

// SoftDelete soft deletes a task
func (r *GormTaskRepository) SoftDelete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
