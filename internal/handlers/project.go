package handlers

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/dto"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/middleware"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Projects are retrieved", dto.ToProjectDTOs(projects))
}

// ListProjectDetails returns the caller's projects with task counts
func (h *ProjectHandler) ListProjectDetails(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	details, err := h.projects.ListAllDetails(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Projects are retrieved", dto.ToProjectDetailDTOs(details))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projects.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Project is retrieved", dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.Created(c, "Project is created", dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projects.Update(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Project is updated", dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Project is deleted", nil)
}

func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	project, err := h.projects.Complete(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Project is completed", dto.ToProjectDTO(*project))
}
