package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	ctx      context.Context
	users    UserRepository
	roles    RoleRepository
	projects ProjectRepository
	tasks    TaskRepository
	tokens   ConfirmationTokenRepository
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	suite.ctx = context.Background()
	suite.users = NewUserRepository(suite.db)
	suite.roles = NewRoleRepository(suite.db)
	suite.projects = NewProjectRepository(suite.db)
	suite.tasks = NewTaskRepository(suite.db)
	suite.tokens = NewConfirmationTokenRepository(suite.db)
}

func (suite *RepositoryTestSuite) TestUserLookupsSkipDeleted() {
	user := testutil.CreateUser(suite.T(), suite.db, "alice@example.com", 1)

	found, err := suite.users.FindByUsername(suite.ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal(models.RoleAdmin, found.Role.Description)

	suite.Require().NoError(suite.users.SoftDelete(suite.ctx, found))
	suite.Equal("alice@example.com-"+uintString(user.ID), found.UserName)

	_, err = suite.users.FindByUsername(suite.ctx, "alice@example.com")
	suite.ErrorIs(err, ErrNotFound)
	_, err = suite.users.FindByID(suite.ctx, user.ID)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *RepositoryTestSuite) TestCreateDuplicateKeys() {
	user := testutil.CreateUser(suite.T(), suite.db, "alice@example.com", 2)
	err := suite.users.Create(suite.ctx, &models.User{UserName: "alice@example.com", PassWord: "h", RoleID: 2})
	suite.ErrorIs(err, ErrDuplicate)

	testutil.CreateProject(suite.T(), suite.db, "P1", user.ID)
	err = suite.projects.Create(suite.ctx, &models.Project{ProjectCode: "P1", ProjectName: "Again", AssignedManagerID: user.ID})
	suite.ErrorIs(err, ErrDuplicate)
}

func (suite *RepositoryTestSuite) TestUserListSortedAndByRole() {
	testutil.CreateUser(suite.T(), suite.db, "zed", 3)
	testutil.CreateUser(suite.T(), suite.db, "amy", 2)
	testutil.CreateUser(suite.T(), suite.db, "bob", 3)

	users, err := suite.users.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 3)
	suite.Equal("amy", users[0].FirstName)
	suite.Equal("bob", users[1].FirstName)
	suite.Equal("zed", users[2].FirstName)

	employees, err := suite.users.ListByRole(suite.ctx, "employee")
	suite.Require().NoError(err)
	suite.Len(employees, 2)
	for _, u := range employees {
		suite.Equal(models.RoleEmployee, u.Role.Description)
	}
}

func (suite *RepositoryTestSuite) TestRoles() {
	roles, err := suite.roles.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(roles, 3)

	role, err := suite.roles.FindByDescription(suite.ctx, "MANAGER")
	suite.Require().NoError(err)
	suite.Equal(uint64(2), role.ID)

	_, err = suite.roles.FindByID(suite.ctx, 99)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *RepositoryTestSuite) TestProjectSoftDeleteRenamesCode() {
	manager := testutil.CreateUser(suite.T(), suite.db, "manager", 2)
	project := testutil.CreateProject(suite.T(), suite.db, "P1", manager.ID)

	count, err := suite.projects.CountByManager(suite.ctx, manager.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.projects.SoftDelete(suite.ctx, project))
	suite.Equal("P1-"+uintString(project.ID), project.ProjectCode)

	_, err = suite.projects.FindByCode(suite.ctx, "P1")
	suite.ErrorIs(err, ErrNotFound)

	count, err = suite.projects.CountByManager(suite.ctx, manager.ID)
	suite.Require().NoError(err)
	suite.Zero(count)

	// The original code is free again.
	testutil.CreateProject(suite.T(), suite.db, "P1", manager.ID)
	found, err := suite.projects.FindByCode(suite.ctx, "P1")
	suite.Require().NoError(err)
	suite.Equal("manager", found.AssignedManager.UserName)
}

func (suite *RepositoryTestSuite) TestProjectListNonCompleted() {
	manager := testutil.CreateUser(suite.T(), suite.db, "manager", 2)
	testutil.CreateProject(suite.T(), suite.db, "B", manager.ID)
	done := testutil.CreateProject(suite.T(), suite.db, "A", manager.ID)
	done.ProjectStatus = models.StatusComplete
	suite.Require().NoError(suite.projects.Update(suite.ctx, done))

	all, err := suite.projects.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("A", all[0].ProjectCode)

	open, err := suite.projects.ListNonCompleted(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(open, 1)
	suite.Equal("B", open[0].ProjectCode)
}

func (suite *RepositoryTestSuite) TestTaskCountsAndListings() {
	manager := testutil.CreateUser(suite.T(), suite.db, "manager", 2)
	other := testutil.CreateUser(suite.T(), suite.db, "other", 2)
	employee := testutil.CreateUser(suite.T(), suite.db, "employee", 3)
	project := testutil.CreateProject(suite.T(), suite.db, "P1", manager.ID)
	foreign := testutil.CreateProject(suite.T(), suite.db, "P2", other.ID)

	testutil.CreateTask(suite.T(), suite.db, project.ID, employee.ID, models.StatusComplete)
	testutil.CreateTask(suite.T(), suite.db, project.ID, employee.ID, models.StatusOpen)
	inProgress := testutil.CreateTask(suite.T(), suite.db, project.ID, employee.ID, models.StatusInProgress)
	testutil.CreateTask(suite.T(), suite.db, foreign.ID, employee.ID, models.StatusOpen)

	completed, err := suite.tasks.CountByProjectCode(suite.ctx, "P1", true)
	suite.Require().NoError(err)
	suite.Equal(int64(1), completed)

	unfinished, err := suite.tasks.CountByProjectCode(suite.ctx, "P1", false)
	suite.Require().NoError(err)
	suite.Equal(int64(2), unfinished)

	suite.Require().NoError(suite.tasks.SoftDelete(suite.ctx, inProgress.ID))
	unfinished, err = suite.tasks.CountByProjectCode(suite.ctx, "P1", false)
	suite.Require().NoError(err)
	suite.Equal(int64(1), unfinished)

	byManager, err := suite.tasks.ListByManager(suite.ctx, manager.ID)
	suite.Require().NoError(err)
	suite.Len(byManager, 2)
	for _, task := range byManager {
		suite.Equal("P1", task.Project.ProjectCode)
		suite.Equal("employee", task.AssignedEmployee.UserName)
	}

	pending, err := suite.tasks.ListPendingByEmployee(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	suite.Len(pending, 2)

	count, err := suite.tasks.CountByEmployee(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	byProject, err := suite.tasks.ListByProject(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Len(byProject, 2)
}

func (suite *RepositoryTestSuite) TestTaskUpdateStatus() {
	manager := testutil.CreateUser(suite.T(), suite.db, "manager", 2)
	employee := testutil.CreateUser(suite.T(), suite.db, "employee", 3)
	project := testutil.CreateProject(suite.T(), suite.db, "P1", manager.ID)
	task := testutil.CreateTask(suite.T(), suite.db, project.ID, employee.ID, models.StatusOpen)

	suite.Require().NoError(suite.tasks.UpdateStatus(suite.ctx, task.ID, models.StatusInProgress))

	found, err := suite.tasks.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusInProgress, found.TaskStatus)
	suite.Equal("subject", found.TaskSubject)
}

func (suite *RepositoryTestSuite) TestConfirmationTokenRedeem() {
	user := testutil.CreateUser(suite.T(), suite.db, "new@example.com", 3)
	suite.Require().NoError(suite.db.Model(user).Update("enabled", false).Error)

	now := time.Now()
	token := &models.ConfirmationToken{Token: "abc", UserID: user.ID, ExpireDate: now.Add(time.Hour)}
	suite.Require().NoError(suite.tokens.Create(suite.ctx, token))

	found, err := suite.tokens.FindActive(suite.ctx, "abc", now)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.User.ID)

	_, err = suite.tokens.FindActive(suite.ctx, "abc", now.Add(2*time.Hour))
	suite.ErrorIs(err, ErrNotFound)

	suite.Require().NoError(suite.tokens.Redeem(suite.ctx, found))

	enabled, err := suite.users.FindByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.True(enabled.Enabled)

	_, err = suite.tokens.FindActive(suite.ctx, "abc", now)
	suite.ErrorIs(err, ErrNotFound)

	// Single use.
	suite.ErrorIs(suite.tokens.Redeem(suite.ctx, found), ErrNotFound)
}

func (suite *RepositoryTestSuite) TestConfirmationTokenOfDeletedUser() {
	user := testutil.CreateUser(suite.T(), suite.db, "gone@example.com", 3)
	suite.Require().NoError(suite.db.Model(user).Update("enabled", false).Error)

	now := time.Now()
	token := &models.ConfirmationToken{Token: "gone", UserID: user.ID, ExpireDate: now.Add(time.Hour)}
	suite.Require().NoError(suite.tokens.Create(suite.ctx, token))

	found, err := suite.tokens.FindActive(suite.ctx, "gone", now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.users.SoftDelete(suite.ctx, user))

	_, err = suite.tokens.FindActive(suite.ctx, "gone", now)
	suite.ErrorIs(err, ErrNotFound)
	suite.ErrorIs(suite.tokens.Redeem(suite.ctx, found), ErrNotFound)

	var stored models.ConfirmationToken
	suite.Require().NoError(suite.db.First(&stored, token.ID).Error)
	suite.False(stored.IsDeleted)

	var gone models.User
	suite.Require().NoError(suite.db.First(&gone, user.ID).Error)
	suite.False(gone.Enabled)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func uintString(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByUsername_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	_, err := NewUserRepository(db).FindByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CountByProjectCode_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	_, err := NewTaskRepository(db).CountByProjectCode(context.Background(), "P1", true)
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmationTokenRepository_Redeem_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `confirmation_tokens`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := NewConfirmationTokenRepository(db).Redeem(context.Background(), &models.ConfirmationToken{ID: 1, UserID: 2})
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmationTokenRepository_Redeem_DeletedUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := NewConfirmationTokenRepository(db).Redeem(context.Background(), &models.ConfirmationToken{ID: 1, UserID: 2})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmationTokenRepository_Redeem_AlreadyEnabledUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("UPDATE `confirmation_tokens`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewConfirmationTokenRepository(db).Redeem(context.Background(), &models.ConfirmationToken{ID: 1, UserID: 2})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
