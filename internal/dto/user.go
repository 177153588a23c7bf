package dto

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
)

// RoleDTO represents a role in API requests and responses
type RoleDTO struct {
	ID          uint64 `json:"id"`
	Description string `json:"description,omitempty"`
}

// UserDTO represents a user in API responses. The password never leaves the server.
type UserDTO struct {
	ID        uint64        `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	UserName  string        `json:"userName"`
	Phone     string        `json:"phone"`
	Gender    models.Gender `json:"gender"`
	Enabled   bool          `json:"enabled"`
	Role      RoleDTO       `json:"role"`
}

// CreateUserRequest represents the body of user create requests
type CreateUserRequest struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	UserName        string        `json:"userName" binding:"required,email"`
	PassWord        string        `json:"passWord" binding:"required,min=6"`
	ConfirmPassword string        `json:"confirmPassword" binding:"omitempty,eqfield=PassWord"`
	Phone           string        `json:"phone"`
	Gender          models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Role            RoleRef       `json:"role"`
}

// RoleRef references a role by id inside user create requests
type RoleRef struct {
	ID uint64 `json:"id" binding:"required"`
}

// UserRequest represents the body of user update requests. A zero role id
// keeps the current role.
type UserRequest struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	UserName        string        `json:"userName" binding:"required,email"`
	PassWord        string        `json:"passWord" binding:"required,min=6"`
	ConfirmPassword string        `json:"confirmPassword" binding:"omitempty,eqfield=PassWord"`
	Phone           string        `json:"phone"`
	Gender          models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Role            RoleDTO       `json:"role"`
}

// UserRef references a user by user name inside project and task requests
type UserRef struct {
	UserName string `json:"userName" binding:"required"`
}

func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{ID: role.ID, Description: role.Description}
}

func ToRoleDTOs(roles []models.Role) []RoleDTO {
	out := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		out = append(out, ToRoleDTO(r))
	}
	return out
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserName:  user.UserName,
		Phone:     user.Phone,
		Gender:    user.Gender,
		Enabled:   user.Enabled,
		Role:      ToRoleDTO(user.Role),
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

func (r CreateUserRequest) CreateInput() services.CreateUserInput {
	return services.CreateUserInput{
		UserName:  r.UserName,
		Password:  r.PassWord,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Gender:    r.Gender,
		RoleID:    r.Role.ID,
	}
}

func (r UserRequest) UpdateInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		UserName:  r.UserName,
		Password:  r.PassWord,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Gender:    r.Gender,
		RoleID:    r.Role.ID,
	}
}
