package handlers

import (
	"log/slog"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/metrics"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/middleware"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

// Services bundles the domain services the API is built on
type Services struct {
	Auth          *services.AuthService
	Confirmations *services.ConfirmationService
	Users         *services.UserService
	Roles         *services.RoleService
	Projects      *services.ProjectService
	Tasks         *services.TaskService
}

// RouterOptions carries the optional ambient collaborators of the router
type RouterOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	DB      Pinger
}

// NewRouter wires every route with its authentication and role guards.
func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	authHandler := NewAuthHandler(svc.Auth, svc.Confirmations)
	userHandler := NewUserHandler(svc.Users)
	roleHandler := NewRoleHandler(svc.Roles)
	projectHandler := NewProjectHandler(svc.Projects)
	taskHandler := NewTaskHandler(svc.Tasks)

	admin := middleware.RequireRoles(models.RoleAdmin)
	manager := middleware.RequireRoles(models.RoleManager)
	employee := middleware.RequireRoles(models.RoleEmployee)
	adminOrManager := middleware.RequireRoles(models.RoleAdmin, models.RoleManager)
	managerOrEmployee := middleware.RequireRoles(models.RoleManager, models.RoleEmployee)
	taskID := middleware.RequireTaskID()

	r.GET("/health", Health(opts.DB))

	// Public routes
	r.POST("/authenticate", authHandler.Login)
	r.GET("/confirmation", authHandler.Confirm)

	api := r.Group("/api/v1")
	api.Use(middleware.RequireAuth(svc.Auth))
	{
		users := api.Group("/user")
		{
			users.POST("", admin, userHandler.CreateUser)
			users.POST("/create-user", admin, userHandler.CreateUser)
			users.GET("", admin, userHandler.ListUsers)
			users.GET("/role", adminOrManager, userHandler.ListUsersByRole)
			users.GET("/:username", userHandler.GetUser)
			users.PUT("", userHandler.UpdateUser)
			users.DELETE("/:username", admin, userHandler.DeleteUser)
		}

		roles := api.Group("/role")
		{
			roles.GET("", admin, roleHandler.ListRoles)
			roles.GET("/:id", admin, roleHandler.GetRole)
		}

		projects := api.Group("/project")
		{
			projects.GET("", adminOrManager, projectHandler.ListProjects)
			projects.GET("/details", manager, projectHandler.ListProjectDetails)
			projects.GET("/:code", adminOrManager, projectHandler.GetProject)
			projects.POST("", adminOrManager, projectHandler.CreateProject)
			projects.PUT("", adminOrManager, projectHandler.UpdateProject)
			projects.DELETE("/:code", adminOrManager, projectHandler.DeleteProject)
			projects.PUT("/complete/:code", manager, projectHandler.CompleteProject)
		}

		tasks := api.Group("/task")
		{
			tasks.GET("", manager, taskHandler.ListTasks)
			tasks.GET("/project-manager", manager, taskHandler.ListManagerTasks)
			tasks.GET("/employee", employee, taskHandler.ListPendingTasks)
			tasks.PUT("/employee/update", employee, taskHandler.UpdateTaskStatus)
			tasks.GET("/:id", managerOrEmployee, taskID, taskHandler.GetTask)
			tasks.POST("", manager, taskHandler.CreateTask)
			tasks.PUT("/:id", manager, taskID, taskHandler.UpdateTask)
			tasks.DELETE("/:id", manager, taskID, taskHandler.DeleteTask)
		}
	}

	return r
}
