package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
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

// otpService implements the OtpUsecase interface.
type otpService struct {
	txManager repository.TransactionManager
	otpRepo   repository.OtpRepository
	clock     service.Clock
	cfg       *config.OtpConfig
	logger    *slog.Logger
}

// OtpServiceParams holds dependencies for OtpService, injected by Fx.
type OtpServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OtpRepo   repository.OtpRepository
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOtpService creates a new OTP service instance.
func NewOtpService(params OtpServiceParams) usecase.OtpUsecase {
	cfg := params.Config.Otp
	if cfg == nil {
		cfg = &config.OtpConfig{}
	}
	cfg.ApplyDefaults()

	return &otpService{
		txManager: params.TxManager,
		otpRepo:   params.OtpRepo,
		clock:     params.Clock,
		cfg:       cfg,
		logger:    params.Logger,
	}
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *otpService) Issue(ctx context.Context, identifier string, purpose entity.OtpPurpose) (string, error) {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" || !purpose.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("identifier and purpose are required")
	}

	now := srv.clock.Now()
	var code string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.OtpRepo()

		// Count, supersede and insert must not interleave with another issuer.
		if err := otpRepo.LockIdentifier(ctx, identifier); err != nil {
			return errors.Wrap(err, "failed to lock identifier")
		}

		since := now.Add(-srv.cfg.Window)
		var (
			recent int64
			err    error
		)
		if srv.cfg.Scope == config.OtpScopePurpose {
			recent, err = otpRepo.CountRecentByIdentifierAndPurpose(ctx, identifier, purpose, since)
		} else {
			recent, err = otpRepo.CountRecentByIdentifier(ctx, identifier, since)
		}
		if err != nil {
			return errors.Wrap(err, "failed to count recent codes")
		}
		if recent >= int64(srv.cfg.MaxPerWindow) {
			return domainerrors.ErrOtpRateLimited.WrapMessage("otp issuance throttled")
		}

		if _, err := otpRepo.InvalidateActive(ctx, identifier, purpose, now); err != nil {
			return errors.Wrap(err, "failed to invalidate active codes")
		}

		code = generateCode(srv.cfg.Length)
		record := &entity.OtpRecord{
			Identifier: identifier,
			Code:       code,
			Purpose:    purpose,
			ExpiresAt:  now.Add(srv.cfg.TTL),
			CreatedAt:  now,
		}
		if err := otpRepo.Save(ctx, record); err != nil {
			return errors.Wrap(err, "failed to save code")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrOtpRateLimited) {
			srv.log(ctx).Warn("OTP rate limit reached", slog.String("identifier", identifier), slog.Any("purpose", purpose))

			return "", err
		}
		srv.log(ctx).Error("Failed to issue OTP", slog.Any("purpose", purpose), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to issue otp")
	}

	srv.log(ctx).Debug("OTP issued", slog.String("identifier", identifier), slog.Any("purpose", purpose))

	return code, nil
}

func (srv *otpService) Verify(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error) {
	record, err := srv.findActive(ctx, identifier, code, purpose)
	if err != nil || record == nil {
		return false, err
	}

	// A concurrent verify may have consumed the record between lookup and update.
	consumed, err := srv.otpRepo.MarkUsed(ctx, record)
	if err != nil {
		return false, errors.Wrap(err, "failed to mark code used")
	}

	return consumed, nil
}

func (srv *otpService) CheckValid(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error) {
	record, err := srv.findActive(ctx, identifier, code, purpose)
	if err != nil {
		return false, err
	}

	return record != nil, nil
}

func (srv *otpService) findActive(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (*entity.OtpRecord, error) {
	identifier = normalizeIdentifier(identifier)
	code = strings.TrimSpace(code)
	if identifier == "" || code == "" {
		return nil, nil
	}

	record, err := srv.otpRepo.FindActive(ctx, identifier, code, purpose, srv.clock.Now())
	if errors.Is(err, repository.ErrOtpNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active code")
	}

	return record, nil
}

func (srv *otpService) Delete(ctx context.Context, identifier string, purpose entity.OtpPurpose) error {
	if err := srv.otpRepo.DeleteByIdentifierAndPurpose(ctx, normalizeIdentifier(identifier), purpose); err != nil {
		return errors.Wrap(err, "failed to delete codes")
	}

	return nil
}

func (srv *otpService) SweepExpired(ctx context.Context) (int64, error) {
	deleted, err := srv.otpRepo.DeleteExpired(ctx, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired codes")
	}

	srv.log(ctx).Info("Expired OTPs swept", slog.Int64("deleted", deleted))

	return deleted, nil
}

// generateCode returns a numeric code of the given length.
func generateCode(length int) string {
	if length <= 0 {
		length = 6
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}

	return b.String()
}

// normalizeIdentifier lowercases emails so codes match regardless of input case.
func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
