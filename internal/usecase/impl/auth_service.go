// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	otp               usecase.OtpUsecase
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	dispatcher        service.Dispatcher
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Otp          usecase.OtpUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Dispatcher   service.Dispatcher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:          params.UserRepo,
		otp:               params.Otp,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		dispatcher:        params.Dispatcher,
		minPasswordLength: minPasswordLength(params.Config),
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and sends the activation code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeIdentifier(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	if err := ensureEmailFree(ctx, srv.userRepo, email); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := ensurePhoneFree(ctx, srv.userRepo, phone); err != nil {
			return nil, err
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Activated:    false,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserWriteError(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	if err := srv.issueAndSend(ctx, service.ChannelEmail, email, entity.OtpActivation); err != nil {
		srv.log(ctx).Warn("Activation code not issued", slog.String("user_id", user.ID.String()), slog.Any("error", err))
	}

	return user, nil
}

// Activate verifies the activation code and marks the account active.
func (srv *authService) Activate(ctx context.Context, email, code string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Activated {
		return domainerrors.ErrAlreadyActivated
	}

	ok, err := srv.otp.Verify(ctx, email, code, entity.OtpActivation)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrInvalidOtp
	}

	user.Activated = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to activate user")
	}

	srv.log(ctx).Info("User activated", slog.String("user_id", user.ID.String()))

	return nil
}

// ResendActivation issues a fresh activation code. Earlier codes stop working.
func (srv *authService) ResendActivation(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Activated {
		return domainerrors.ErrAlreadyActivated
	}

	return srv.issueAndSend(ctx, service.ChannelEmail, user.Email, entity.OtpActivation)
}

// Login checks credentials and returns a token pair.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeIdentifier(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.Activated {
		return nil, domainerrors.ErrAccountNotActivated
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{User: user, Tokens: tokens}, nil
}

// ForgotPassword sends a reset code to a registered email.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	return srv.issueAndSend(ctx, service.ChannelEmail, user.Email, entity.OtpResetPassword)
}

// VerifyOtp reports whether code is currently valid without consuming it.
func (srv *authService) VerifyOtp(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error) {
	if !purpose.IsValid() {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown otp purpose")
	}

	return srv.otp.CheckValid(ctx, identifier, code, purpose)
}

// ResetPassword consumes a reset code and replaces the password.
func (srv *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	ok, err := srv.otp.Verify(ctx, user.Email, code, entity.OtpResetPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrInvalidOtp
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	if err := srv.otp.Delete(ctx, user.Email, entity.OtpResetPassword); err != nil {
		srv.log(ctx).Warn("Failed to delete reset codes", slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset", slog.String("user_id", user.ID.String()))

	return nil
}

// Refresh exchanges a refresh token for a new pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed subject")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	tokens, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return tokens, nil
}

func (srv *authService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeIdentifier(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) issueAndSend(ctx context.Context, channel service.DispatchChannel, destination string, purpose entity.OtpPurpose) error {
	code, err := srv.otp.Issue(ctx, destination, purpose)
	if err != nil {
		return err
	}
	sendOtp(ctx, srv.dispatcher, srv.logger, channel, destination, code, purpose)

	return nil
}

func minPasswordLength(cfg *config.Config) int {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.MinPasswordLength <= 0 {
		return 6
	}

	return cfg.Auth.MinPasswordLength
}

func ensureEmailFree(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailInUse
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

func ensurePhoneFree(ctx context.Context, userRepo repository.UserRepository, phone string) error {
	_, err := userRepo.FindByPhone(ctx, phone)
	if err == nil {
		return domainerrors.ErrPhoneInUse
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check phone")
	}

	return nil
}

// mapUserWriteError translates unique index violations lost to a concurrent writer.
func mapUserWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailInUse
	case errors.Is(err, repository.ErrDuplicatePhone):
		return domainerrors.ErrPhoneInUse
	default:
		return errors.Wrap(err, msg)
	}
}
