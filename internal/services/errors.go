package services

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid user name or password")
	ErrAccountNotConfirmed     = errors.New("account is not confirmed")
	ErrTokenNotFound           = errors.New("confirmation token not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrDuplicateUser           = errors.New("user already exists")
	ErrRoleNotFound            = errors.New("role not found")
	ErrAccessDenied            = errors.New("access denied")
	ErrUserLinkedToActiveWork  = errors.New("user is linked to a project or task that is not completed")
	ErrProjectNotFound         = errors.New("project not found")
	ErrDuplicateProjectCode    = errors.New("project code already exists")
	ErrManagerNotFound         = errors.New("manager not found")
	ErrNoProjectsAssigned      = errors.New("no projects are assigned to the manager")
	ErrTaskNotFound            = errors.New("task not found")
	ErrInvalidStatus           = errors.New("unknown status")
	ErrInvalidStatusTransition = errors.New("a completed task cannot change status")
)
