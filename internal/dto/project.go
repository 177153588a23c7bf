package dto

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID                  uint64        `json:"id"`
	ProjectCode         string        `json:"projectCode"`
	ProjectName         string        `json:"projectName"`
	AssignedManager     UserDTO       `json:"assignedManager"`
	StartDate           Date          `json:"startDate"`
	EndDate             Date          `json:"endDate"`
	ProjectDetail       string        `json:"projectDetail"`
	ProjectStatus       models.Status `json:"projectStatus"`
	CompleteTaskCount   int64         `json:"completeTaskCount"`
	UnfinishedTaskCount int64         `json:"unfinishedTaskCount"`
}

// ProjectRequest represents the body of project create and update requests.
// Any projectStatus sent by the client is ignored.
type ProjectRequest struct {
	ProjectCode     string  `json:"projectCode" binding:"required"`
	ProjectName     string  `json:"projectName" binding:"required"`
	AssignedManager UserRef `json:"assignedManager"`
	StartDate       Date    `json:"startDate"`
	EndDate         Date    `json:"endDate"`
	ProjectDetail   string  `json:"projectDetail"`
}

// ProjectRef references a project by code inside task requests
type ProjectRef struct {
	ProjectCode string `json:"projectCode" binding:"required"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:              project.ID,
		ProjectCode:     project.ProjectCode,
		ProjectName:     project.ProjectName,
		AssignedManager: ToUserDTO(project.AssignedManager),
		StartDate:       NewDate(project.StartDate),
		EndDate:         NewDate(project.EndDate),
		ProjectDetail:   project.ProjectDetail,
		ProjectStatus:   project.ProjectStatus,
	}
}

func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectDTO(p))
	}
	return out
}

// ToProjectDetailDTOs converts projects with task counts
func ToProjectDetailDTOs(details []services.ProjectDetails) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(details))
	for _, d := range details {
		p := ToProjectDTO(d.Project)
		p.CompleteTaskCount = d.CompleteTaskCount
		p.UnfinishedTaskCount = d.UnfinishedTaskCount
		out = append(out, p)
	}
	return out
}

func (r ProjectRequest) Input() services.ProjectInput {
	return services.ProjectInput{
		ProjectCode:     r.ProjectCode,
		ProjectName:     r.ProjectName,
		ProjectDetail:   r.ProjectDetail,
		StartDate:       r.StartDate.Time,
		EndDate:         r.EndDate.Time,
		AssignedManager: r.AssignedManager.UserName,
	}
}
