package handlers

import (
	"errors"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/dto"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService   *services.AuthService
	confirmations *services.ConfirmationService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, confirmations *services.ConfirmationService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		confirmations: confirmations,
	}
}

// Login authenticates a user and returns a session token as data.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, _, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// An unconfirmed account is a forbidden login, not a failed precondition.
		if errors.Is(err, services.ErrAccountNotConfirmed) {
			apierrors.Forbidden(c, "Please confirm your account")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, constants.DefaultLoginErrorMessage)
			return
		}
		respondError(c, err, constants.DefaultLoginErrorMessage)
		return
	}

	apierrors.OK(c, "Login Successful", token)
}

// Confirm redeems the confirmation token from the query string.
func (h *AuthHandler) Confirm(c *gin.Context) {
	value := c.Query("token")
	if value == "" {
		apierrors.BadRequest(c, "Missing confirmation token")
		return
	}

	user, err := h.confirmations.Redeem(c.Request.Context(), value)
	if err != nil {
		respondError(c, err, constants.DefaultConfirmMessage)
		return
	}

	apierrors.OK(c, "User has been confirmed!", dto.ToUserDTO(*user))
}
