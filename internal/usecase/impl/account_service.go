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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	userRepo          repository.UserRepository
	otp               usecase.OtpUsecase
	hasher            service.PasswordHasher
	dispatcher        service.Dispatcher
	minPasswordLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Otp        usecase.OtpUsecase
	Hasher     service.PasswordHasher
	Dispatcher service.Dispatcher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:          params.UserRepo,
		otp:               params.Otp,
		hasher:            params.Hasher,
		dispatcher:        params.Dispatcher,
		minPasswordLength: minPasswordLength(params.Config),
		logger:            params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the fields that are set. An empty name is rejected.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		user.Name = name
	}
	if input.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (srv *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := srv.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !srv.hasher.Check(oldPassword, user.PasswordHash) {
		return domainerrors.ErrWrongPassword
	}
	if len(newPassword) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("user_id", userID.String()))

	return nil
}

// SendChangeOtp sends a confirmation code to the address the caller wants to switch to.
func (srv *accountService) SendChangeOtp(ctx context.Context, userID uuid.UUID, identifier string, purpose entity.OtpPurpose) error {
	if _, err := srv.Me(ctx, userID); err != nil {
		return err
	}

	var (
		channel service.DispatchChannel
		inUse   func(context.Context, repository.UserRepository, string) error
	)
	switch purpose {
	case entity.OtpChangeEmail:
		identifier, channel, inUse = normalizeIdentifier(identifier), service.ChannelEmail, ensureEmailFree
	case entity.OtpChangePhone:
		identifier, channel, inUse = strings.TrimSpace(identifier), service.ChannelSMS, ensurePhoneFree
	default:
		return domainerrors.ErrValidationFailed.WithDetails("purpose must be CHANGE_EMAIL or CHANGE_PHONE")
	}
	if identifier == "" {
		return domainerrors.ErrValidationFailed.WithDetails("identifier is required")
	}
	if err := inUse(ctx, srv.userRepo, identifier); err != nil {
		return err
	}

	code, err := srv.otp.Issue(ctx, identifier, purpose)
	if err != nil {
		return err
	}
	sendOtp(ctx, srv.dispatcher, srv.logger, channel, identifier, code, purpose)

	return nil
}

func (srv *accountService) ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail, code string) (*entity.User, error) {
	newEmail = normalizeIdentifier(newEmail)

	return srv.changeContact(ctx, userID, newEmail, code, entity.OtpChangeEmail, func(u *entity.User) {
		u.Email = newEmail
	})
}

func (srv *accountService) ChangePhone(ctx context.Context, userID uuid.UUID, newPhone, code string) (*entity.User, error) {
	newPhone = strings.TrimSpace(newPhone)

	return srv.changeContact(ctx, userID, newPhone, code, entity.OtpChangePhone, func(u *entity.User) {
		u.Phone = newPhone
	})
}

func (srv *accountService) changeContact(
	ctx context.Context,
	userID uuid.UUID,
	identifier, code string,
	purpose entity.OtpPurpose,
	apply func(*entity.User),
) (*entity.User, error) {
	if identifier == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identifier is required")
	}

	user, err := srv.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	ok, err := srv.otp.Verify(ctx, identifier, code, purpose)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrInvalidOtp
	}

	// The address may have been taken since the code was sent.
	if purpose == entity.OtpChangeEmail {
		err = ensureEmailFree(ctx, srv.userRepo, identifier)
	} else {
		err = ensurePhoneFree(ctx, srv.userRepo, identifier)
	}
	if err != nil {
		return nil, err
	}

	apply(user)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, mapUserWriteError(err, "failed to update contact")
	}

	if err := srv.otp.Delete(ctx, identifier, purpose); err != nil {
		srv.log(ctx).Warn("Failed to delete change codes", slog.Any("purpose", purpose), slog.Any("error", err))
	}

	srv.log(ctx).Info("Contact changed", slog.String("user_id", userID.String()), slog.Any("purpose", purpose))

	return user, nil
}
