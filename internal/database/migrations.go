package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by the task count and
// listing queries.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"tasks", "idx_tasks_project_status", "project_id, task_status"},
		{"tasks", "idx_tasks_employee_status", "assigned_employee_id, task_status"},
		{"projects", "idx_projects_manager_deleted", "assigned_manager_id, is_deleted"},
		{"confirmation_tokens", "idx_confirmation_tokens_user_deleted", "user_id, is_deleted"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Debug("created index", "name", idx.name, "table", idx.table)
	}

	return nil
}
