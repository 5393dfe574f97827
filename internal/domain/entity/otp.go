package entity

import (
	"time"

	"github.com/google/uuid"
)

// OtpPurpose scopes a code to the flow that requested it.
type OtpPurpose string

const (
	OtpActivation    OtpPurpose = "ACTIVATION"
	OtpResetPassword OtpPurpose = "RESET_PASSWORD"
	OtpChangeEmail   OtpPurpose = "CHANGE_EMAIL"
	OtpChangePhone   OtpPurpose = "CHANGE_PHONE"
)

// IsValid reports whether p is one of the known purposes.
func (p OtpPurpose) IsValid() bool {
	switch p {
	case OtpActivation, OtpResetPassword, OtpChangeEmail, OtpChangePhone:
		return true
	default:
		return false
	}
}

// OtpRecord is one issued code. Identifier is an email address or phone number.
type OtpRecord struct {
	ID         uuid.UUID
	Identifier string
	Code       string
	Purpose    OtpPurpose
	ExpiresAt  time.Time
	Used       bool
	CreatedAt  time.Time
}

// Active reports whether the code can still be verified at now.
func (r *OtpRecord) Active(now time.Time) bool {
	return !r.Used && r.ExpiresAt.After(now)
}
