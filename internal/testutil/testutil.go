// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Password is the plain text password of every user created by CreateUser.
const Password = "secret123"

// NewDB opens a migrated in-memory SQLite database that is closed with the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// CreateUser inserts an enabled user with the given role id.
func CreateUser(t testing.TB, db *gorm.DB, username string, roleID uint64) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(Password)
	require.NoError(t, err)

	user := &models.User{
		UserName:  username,
		PassWord:  hash,
		FirstName: username,
		LastName:  "Test",
		Gender:    models.GenderMale,
		RoleID:    roleID,
		Enabled:   true,
	}
	require.NoError(t, db.Omit("Role").Create(user).Error)
	require.NoError(t, db.Preload("Role").First(user, user.ID).Error)
	return user
}

// CreateProject inserts an open project managed by managerID.
func CreateProject(t testing.TB, db *gorm.DB, code string, managerID uint64) *models.Project {
	t.Helper()

	project := &models.Project{
		ProjectCode:       code,
		ProjectName:       "Project " + code,
		ProjectDetail:     "details",
		StartDate:         time.Now(),
		EndDate:           time.Now().AddDate(0, 1, 0),
		ProjectStatus:     models.StatusOpen,
		AssignedManagerID: managerID,
	}
	require.NoError(t, db.Omit("AssignedManager").Create(project).Error)
	return project
}

// CreateTask inserts a task with the given status.
func CreateTask(t testing.TB, db *gorm.DB, projectID, employeeID uint64, status models.Status) *models.Task {
	t.Helper()

	task := &models.Task{
		ProjectID:          projectID,
		AssignedEmployeeID: employeeID,
		TaskSubject:        "subject",
		TaskDetail:         "detail",
		TaskStatus:         status,
		AssignedDate:       time.Now(),
	}
	require.NoError(t, db.Omit("Project", "AssignedEmployee").Create(task).Error)
	return task
}
