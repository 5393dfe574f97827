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

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Save appends a sample.
func (repo *locationRepository) Save(ctx context.Context, sample *entity.LocationSample) error {
	if sample.ID == uuid.Nil {
		sample.ID = newID()
	}
	sampleM := fromLocationDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save location sample")
	}

	return nil
}

// LatestFor returns the most recently observed sample of userID.
func (repo *locationRepository) LatestFor(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	var sampleM model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("observed_at DESC").
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&sampleM), nil
}

// HistorySince returns samples observed at or after since, oldest first.
func (repo *locationRepository) HistorySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error) {
	return repo.find(ctx, "failed to find location history",
		repo.db.WithContext(ctx).Where("user_id = ? AND observed_at >= ?", userID, since))
}

// HistoryBetween returns samples observed in [from, to], oldest first.
func (repo *locationRepository) HistoryBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error) {
	return repo.find(ctx, "failed to find location history",
		repo.db.WithContext(ctx).Where("user_id = ? AND observed_at BETWEEN ? AND ?", userID, from, to))
}

// LatestForMany uses DISTINCT ON to pick one sample per user in a single query.
func (repo *locationRepository) LatestForMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.LocationSample, error) {
	latest := make(map[uuid.UUID]*entity.LocationSample, len(userIDs))
	if len(userIDs) == 0 {
		return latest, nil
	}

	var sampleModels []*model.LocationSampleModel
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (user_id) * FROM location_samples
			WHERE user_id IN ? ORDER BY user_id, observed_at DESC`, userIDs).
		Scan(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest locations")
	}

	for _, sampleM := range sampleModels {
		latest[sampleM.UserID] = toLocationDomain(sampleM)
	}

	return latest, nil
}

// DeleteOlderThan removes samples observed before cutoff.
func (repo *locationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("observed_at < ?", cutoff).
		Delete(&model.LocationSampleModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old locations")
	}

	return result.RowsAffected, nil
}

func (repo *locationRepository) find(_ context.Context, errMsg string, query *gorm.DB) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel
	if err := query.Order("observed_at ASC").Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationDomain(sampleM))
	}

	return samples, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Speed:      data.Speed,
		Heading:    data.Heading,
		Accuracy:   data.Accuracy,
		Activity:   data.Activity,
		ObservedAt: data.ObservedAt,
		RecordedAt: data.RecordedAt,
	}
}

func fromLocationDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Speed:      data.Speed,
		Heading:    data.Heading,
		Accuracy:   data.Accuracy,
		Activity:   data.Activity,
		ObservedAt: data.ObservedAt,
		RecordedAt: data.RecordedAt,
	}
}
