// Package errors writes the response envelope shared by every endpoint.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API response
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Respond writes an envelope with the given status. Success is derived from it.
func Respond(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Response{
		Success: statusCode < http.StatusBadRequest,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK sends a 200 response
func OK(c *gin.Context, message string, data any) {
	Respond(c, http.StatusOK, message, data)
}

// Created sends a 201 response
func Created(c *gin.Context, message string, data any) {
	Respond(c, http.StatusCreated, message, data)
}

// RespondWithError sends an error response and stops the handler chain
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.Abort()
	Respond(c, statusCode, message, nil)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// BadRequestWithDetails sends a 400 response carrying details as data
func BadRequestWithDetails(c *gin.Context, message string, details any) {
	c.Abort()
	Respond(c, http.StatusBadRequest, message, details)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, message)
}

// PreconditionFailed sends a 412 response
func PreconditionFailed(c *gin.Context, message string) {
	if message == "" {
		message = "Precondition failed"
	}
	RespondWithError(c, http.StatusPreconditionFailed, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}
