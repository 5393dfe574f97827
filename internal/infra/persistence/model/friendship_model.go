package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'friendships' table. A unique expression index on
// (LEAST(user_id, friend_id), GREATEST(user_id, friend_id)) keeps one edge per pair.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
