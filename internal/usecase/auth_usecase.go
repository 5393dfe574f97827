package usecase

import (
	"context"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/service"
)

// RegisterInput contains the data for registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginOutput is returned on successful login.
type LoginOutput struct {
	User   *entity.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// AuthUsecase covers registration, activation, login and password recovery.
type AuthUsecase interface {
	// Register creates an inactive user and sends an activation code to their email.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	Activate(ctx context.Context, email, code string) error

	ResendActivation(ctx context.Context, email string) error

	// Login rejects accounts that were never activated.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	ForgotPassword(ctx context.Context, email string) error

	// VerifyOtp checks a code without consuming it.
	VerifyOtp(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error)

	ResetPassword(ctx context.Context, email, code, newPassword string) error

	Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error)
}
