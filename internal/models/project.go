package models

import "time"

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusComplete   Status = "COMPLETE"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

type Project struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	ProjectCode       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"project_code"`
	ProjectName       string    `gorm:"type:varchar(255);not null" json:"project_name"`
	ProjectDetail     string    `gorm:"type:text" json:"project_detail"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ProjectStatus     Status    `gorm:"type:varchar(20);not null;default:'OPEN'" json:"project_status"`
	AssignedManagerID uint64    `gorm:"not null;index" json:"assigned_manager_id"`
	IsDeleted         bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	AssignedManager User `gorm:"foreignKey:AssignedManagerID" json:"assigned_manager"`
}
