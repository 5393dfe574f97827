package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpRecordModel mirrors the 'otp_records' table.
type OtpRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Identifier string    `gorm:"type:varchar(255);not null;index:idx_otp_records_identifier_created,priority:1"`
	Code       string    `gorm:"type:varchar(16);not null"`
	Purpose    string    `gorm:"type:varchar(32);not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	Used       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;index:idx_otp_records_identifier_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (OtpRecordModel) TableName() string {
	return "otp_records"
}
