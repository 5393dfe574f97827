package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckInModel mirrors the 'check_ins' table. CheckinDay is a DATE column;
// (place_id, user_id, checkin_day) is unique.
type CheckInModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	PlaceID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_check_ins_place_user_day,priority:1"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_check_ins_place_user_day,priority:2"`
	CheckedInAt time.Time      `gorm:"not null"`
	CheckinDay  datatypes.Date `gorm:"not null;uniqueIndex:uq_check_ins_place_user_day,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "check_ins"
}
