package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is unique case-insensitively; phone is
// NULL when unset so the unique index ignores it.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        *string   `gorm:"type:varchar(32)"`
	AvatarURL    string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Activated    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
