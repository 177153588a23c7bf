package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/gin-gonic/gin"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrProjectNotFound, http.StatusNotFound},
	{services.ErrTaskNotFound, http.StatusNotFound},
	{services.ErrRoleNotFound, http.StatusNotFound},
	{services.ErrManagerNotFound, http.StatusNotFound},
	{services.ErrTokenNotFound, http.StatusNotFound},
	{services.ErrNoProjectsAssigned, http.StatusNotFound},
	{services.ErrDuplicateUser, http.StatusConflict},
	{services.ErrDuplicateProjectCode, http.StatusConflict},
	{services.ErrInvalidStatusTransition, http.StatusConflict},
	{services.ErrAccessDenied, http.StatusForbidden},
	{services.ErrAccountNotConfirmed, http.StatusPreconditionFailed},
	{services.ErrUserLinkedToActiveWork, http.StatusPreconditionFailed},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrInvalidStatus, http.StatusBadRequest},
}

// statusFor maps a domain error to its HTTP status and the message of the
// sentinel it matched.
func statusFor(err error) (int, string, bool) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error(), true
		}
	}
	return 0, "", false
}

// respondError writes the envelope for err. Unknown errors are logged and
// answered with fallback so internals never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	if status, message, ok := statusFor(err); ok {
		apierrors.RespondWithError(c, status, message)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	apierrors.InternalError(c, fallback)
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return false
	}
	return true
}
