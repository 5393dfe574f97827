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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

// CountForPlace counts every check-in recorded for placeID.
func (repo *checkInRepository) CountForPlace(ctx context.Context, placeID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Where("place_id = ?", placeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count check-ins")
	}

	return count, nil
}

// CountForPlaces counts check-ins for many places in one grouped query.
func (repo *checkInRepository) CountForPlaces(ctx context.Context, placeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(placeIDs))
	if len(placeIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PlaceID uuid.UUID
		Total   int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Select("place_id, COUNT(*) AS total").
		Where("place_id IN ?", placeIDs).
		Group("place_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count check-ins")
	}

	for _, row := range rows {
		counts[row.PlaceID] = row.Total
	}

	return counts, nil
}

// FindTodayCheckIn looks up the check-in keyed by (place, user, day).
func (repo *checkInRepository) FindTodayCheckIn(ctx context.Context, placeID, userID uuid.UUID, day time.Time) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	if err := repo.db.WithContext(ctx).
		Where("place_id = ? AND user_id = ? AND checkin_day = ?", placeID, userID, datatypes.Date(day)).
		First(&checkInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in")
	}

	return toCheckInDomain(&checkInM), nil
}

// Save inserts a check-in. The (place, user, day) index turns a lost race into ErrDuplicateCheckIn.
func (repo *checkInRepository) Save(ctx context.Context, checkIn *entity.CheckIn) error {
	if checkIn.ID == uuid.Nil {
		checkIn.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(fromCheckInDomain(checkIn)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckIn
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlaceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save check-in")
	}

	return nil
}

// --- Mapper Functions ---

func toCheckInDomain(data *model.CheckInModel) *entity.CheckIn {
	if data == nil {
		return nil
	}

	return &entity.CheckIn{
		ID:          data.ID,
		PlaceID:     data.PlaceID,
		UserID:      data.UserID,
		CheckedInAt: data.CheckedInAt,
		Day:         time.Time(data.CheckinDay),
	}
}

func fromCheckInDomain(data *entity.CheckIn) *model.CheckInModel {
	if data == nil {
		return nil
	}

	return &model.CheckInModel{
		ID:          data.ID,
		PlaceID:     data.PlaceID,
		UserID:      data.UserID,
		CheckedInAt: data.CheckedInAt,
		CheckinDay:  datatypes.Date(data.Day),
	}
}
