package repository

import (
	"context"
	"fmt"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Scopes(database.NotDeleted("projects")).
		Preload("AssignedManager.Role")
}

func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error)
}

func (r *GormProjectRepository) FindByCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	if err := r.live(ctx).Where("projects.project_code = ?", code).First(&project).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *GormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.live(ctx).Order("projects.project_code ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *GormProjectRepository) ListByManager(ctx context.Context, managerID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.live(ctx).
		Where("projects.assigned_manager_id = ?", managerID).
		Order("projects.project_code ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *GormProjectRepository) ListNonCompleted(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.live(ctx).
		Where("projects.project_status <> ?", models.StatusComplete).
		Order("projects.project_code ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *GormProjectRepository) CountByManager(ctx context.Context, managerID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Scopes(database.NotDeleted("projects")).
		Where("projects.assigned_manager_id = ?", managerID).
		Count(&count).Error
	return count, err
}

func (r *GormProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

func (r *GormProjectRepository) SoftDelete(ctx context.Context, project *models.Project) error {
	renamed := fmt.Sprintf("%s-%d", project.ProjectCode, project.ID)
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{"is_deleted": true, "project_code": renamed}).Error
	if err != nil {
		return err
	}

	project.ProjectCode = renamed
	project.IsDeleted = true
	return nil
}
