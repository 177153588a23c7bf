package models

// Role descriptions double as authorization strings.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

type Role struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Description string `gorm:"type:varchar(50);uniqueIndex;not null" json:"description"`
}

// DefaultRoles are seeded by the migration with fixed ids.
func DefaultRoles() []Role {
	return []Role{
		{ID: 1, Description: RoleAdmin},
		{ID: 2, Description: RoleManager},
		{ID: 3, Description: RoleEmployee},
	}
}
