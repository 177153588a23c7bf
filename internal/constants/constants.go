package constants

import "time"

// Context keys shared between middleware and handlers
const (
	ContextKeyIdentity = "identity"
	ContextKeyUserID   = "user_id"
	ContextKeyTaskID   = "task_id"
)

const (
	// AuthorizationHeader carries the signed session token, raw or with BearerPrefix.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)

const (
	MinPasswordLength = 6

	DefaultTokenTTL         = 24 * time.Hour
	ConfirmationTokenTTL    = 24 * time.Hour
	ConfirmationMailSubject = "Confirm Registration"
)

// Default response messages used when a route fails unexpectedly
const (
	DefaultErrorMessage      = "Something went wrong, try again!"
	DefaultLoginErrorMessage = "Bad credentials"
	DefaultConfirmMessage    = "Failed to confirm email, please try again!"
)
