package handlers

import (
	"strconv"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/dto"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roles *services.RoleService
}

func NewRoleHandler(roles *services.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved roles", dto.ToRoleDTOs(roles))
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid role ID")
		return
	}

	role, err := h.roles.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieved role", dto.ToRoleDTO(*role))
}
