package dto

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID               uint64        `json:"id"`
	Project          ProjectDTO    `json:"project"`
	AssignedEmployee UserDTO       `json:"assignedEmployee"`
	TaskSubject      string        `json:"taskSubject"`
	TaskDetail       string        `json:"taskDetail"`
	TaskStatus       models.Status `json:"taskStatus"`
	AssignedDate     Date          `json:"assignedDate"`
}

// TaskRequest represents the body of task create and update requests
type TaskRequest struct {
	Project          ProjectRef `json:"project"`
	AssignedEmployee UserRef    `json:"assignedEmployee"`
	TaskSubject      string     `json:"taskSubject" binding:"required"`
	TaskDetail       string     `json:"taskDetail"`
}

// TaskStatusRequest represents the body of a status change
type TaskStatusRequest struct {
	ID         uint64        `json:"id" binding:"required"`
	TaskStatus models.Status `json:"taskStatus" binding:"required,oneof=OPEN IN_PROGRESS COMPLETE"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:               task.ID,
		Project:          ToProjectDTO(task.Project),
		AssignedEmployee: ToUserDTO(task.AssignedEmployee),
		TaskSubject:      task.TaskSubject,
		TaskDetail:       task.TaskDetail,
		TaskStatus:       task.TaskStatus,
		AssignedDate:     NewDate(task.AssignedDate),
	}
}

func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskDTO(t))
	}
	return out
}

func (r TaskRequest) CreateInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		ProjectCode:      r.Project.ProjectCode,
		AssignedEmployee: r.AssignedEmployee.UserName,
		TaskSubject:      r.TaskSubject,
		TaskDetail:       r.TaskDetail,
	}
}

func (r TaskRequest) UpdateInput(id uint64) services.UpdateTaskInput {
	return services.UpdateTaskInput{
		ID:               id,
		ProjectCode:      r.Project.ProjectCode,
		AssignedEmployee: r.AssignedEmployee.UserName,
		TaskSubject:      r.TaskSubject,
		TaskDetail:       r.TaskDetail,
	}
}

func (r TaskStatusRequest) Input() services.UpdateStatusInput {
	return services.UpdateStatusInput{ID: r.ID, Status: r.TaskStatus}
}
