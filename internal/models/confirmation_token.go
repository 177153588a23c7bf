package models

import "time"

type ConfirmationToken struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Token      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	ExpireDate time.Time `gorm:"not null" json:"expire_date"`
	IsDeleted  bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
