package handlers

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/dto"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/middleware"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser registers a user and mails the confirmation link
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.CreateInput())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.Created(c, "User has been created!", dto.ToUserDTO(*user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieve users", dto.ToUserDTOs(users))
}

func (h *UserHandler) ListUsersByRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		apierrors.BadRequest(c, "Missing role")
		return
	}

	users, err := h.users.ListByRole(c.Request.Context(), role)
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully read users by role", dto.ToUserDTOs(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), caller, c.Param("username"))
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully retrieve users", dto.ToUserDTO(*user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), caller, req.UpdateInput())
	if err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully updated user", dto.ToUserDTO(*user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, err, constants.DefaultErrorMessage)
		return
	}

	apierrors.OK(c, "Successfully deleted", nil)
}
