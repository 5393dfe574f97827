package postgres

import (
	"context"
	"time"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{
		db: db,
	}
}

func (repo *otpRepository) CountRecentByIdentifier(ctx context.Context, identifier string, since time.Time) (int64, error) {
	return repo.count(ctx, "identifier = ? AND created_at > ?", identifier, since)
}

func (repo *otpRepository) CountRecentByIdentifierAndPurpose(ctx context.Context, identifier string, purpose entity.OtpPurpose, since time.Time) (int64, error) {
	return repo.count(ctx, "identifier = ? AND purpose = ? AND created_at > ?", identifier, string(purpose), since)
}

// InvalidateActive marks every live code for (identifier, purpose) as used.
func (repo *otpRepository) InvalidateActive(ctx context.Context, identifier string, purpose entity.OtpPurpose, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OtpRecordModel{}).
		Where("identifier = ? AND purpose = ? AND used = ? AND expires_at > ?", identifier, string(purpose), false, now).
		Update("used", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to invalidate otp records")
	}

	return result.RowsAffected, nil
}

// FindActive returns the newest live record matching code.
func (repo *otpRepository) FindActive(ctx context.Context, identifier, code string, purpose entity.OtpPurpose, now time.Time) (*entity.OtpRecord, error) {
	var recordM model.OtpRecordModel
	if err := repo.db.WithContext(ctx).
		Where("identifier = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?",
			identifier, code, string(purpose), false, now).
		Order("created_at DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp record")
	}

	return toOtpDomain(&recordM), nil
}

// MarkUsed is a conditional update so only one caller can flip the flag.
func (repo *otpRepository) MarkUsed(ctx context.Context, record *entity.OtpRecord) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OtpRecordModel{}).
		Where("id = ? AND used = ?", record.ID, false).
		Update("used", true)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark otp record used")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	record.Used = true

	return true, nil
}

func (repo *otpRepository) Save(ctx context.Context, record *entity.OtpRecord) error {
	if record.ID == uuid.Nil {
		record.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(fromOtpDomain(record)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save otp record")
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.OtpRecordModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired otp records")
	}

	return result.RowsAffected, nil
}

func (repo *otpRepository) DeleteByIdentifierAndPurpose(ctx context.Context, identifier string, purpose entity.OtpPurpose) error {
	if err := repo.db.WithContext(ctx).
		Where("identifier = ? AND purpose = ?", identifier, string(purpose)).
		Delete(&model.OtpRecordModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete otp records")
	}

	return nil
}

func (repo *otpRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OtpRecordModel{}).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count otp records")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOtpDomain(data *model.OtpRecordModel) *entity.OtpRecord {
	if data == nil {
		return nil
	}

	return &entity.OtpRecord{
		ID:         data.ID,
		Identifier: data.Identifier,
		Code:       data.Code,
		Purpose:    entity.OtpPurpose(data.Purpose),
		ExpiresAt:  data.ExpiresAt,
		Used:       data.Used,
		CreatedAt:  data.CreatedAt,
	}
}

func fromOtpDomain(data *entity.OtpRecord) *model.OtpRecordModel {
	if data == nil {
		return nil
	}

	return &model.OtpRecordModel{
		ID:         data.ID,
		Identifier: data.Identifier,
		Code:       data.Code,
		Purpose:    string(data.Purpose),
		ExpiresAt:  data.ExpiresAt,
		Used:       data.Used,
		CreatedAt:  data.CreatedAt,
	}
}

// LockIdentifier takes a transaction-scoped advisory lock keyed by identifier.
func (repo *otpRepository) LockIdentifier(ctx context.Context, identifier string) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", identifier).Error; err != nil {
		return errors.Wrap(err, "failed to lock otp identifier")
	}

	return nil
}
