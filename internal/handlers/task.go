package handlers

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/dto"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/middleware"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks returns every live task
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved all tasks", dto.ToTaskDTOs(tasks))
}

// ListManagerTasks returns the tasks of projects managed by the caller
func (h *TaskHandler) ListManagerTasks(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.tasks.ListByProjectManager(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved tasks by project manager", dto.ToTaskDTOs(tasks))
}

// ListPendingTasks returns the caller's tasks that are not complete
func (h *TaskHandler) ListPendingTasks(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.tasks.ListPendingForEmployee(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved pending tasks", dto.ToTaskDTOs(tasks))
}

// UpdateTaskStatus lets an employee move one of their tasks forward
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.TaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), caller, req.Input())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully updated task status", dto.ToTaskDTO(*task))
}

// GetTask returns a single task
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, _ := middleware.GetTaskID(c)

	task, err := h.tasks.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved task", dto.ToTaskDTO(*task))
}

// CreateTask creates an OPEN task assigned today
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), req.CreateInput())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.Created(c, "Successfully task created", dto.ToTaskDTO(*task))
}

// UpdateTask updates an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, _ := middleware.GetTaskID(c)

	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), req.UpdateInput(id))
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully task updated", dto.ToTaskDTO(*task))
}

// DeleteTask soft deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, _ := middleware.GetTaskID(c)

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully deleted", nil)
}
