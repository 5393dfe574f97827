package usecase

import (
	"context"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds optional profile changes.
type UpdateProfileInput struct {
	Name      *string
	AvatarURL *string
}

// AccountUsecase manages the caller's own account.
type AccountUsecase interface {
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error

	// SendChangeOtp sends a code to a new email (CHANGE_EMAIL) or phone (CHANGE_PHONE).
	SendChangeOtp(ctx context.Context, userID uuid.UUID, identifier string, purpose entity.OtpPurpose) error

	ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail, code string) (*entity.User, error)

	ChangePhone(ctx context.Context, userID uuid.UUID, newPhone, code string) (*entity.User, error)
}
