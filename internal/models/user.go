package models

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserName  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"user_name"`
	PassWord  string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Gender    Gender    `gorm:"type:varchar(10)" json:"gender"`
	RoleID    uint64    `gorm:"not null" json:"role_id"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role"`
}

// HasRole reports whether the user's role description equals role.
func (u User) HasRole(role string) bool {
	return u.Role.Description == role
}
