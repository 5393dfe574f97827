package postgres

import (
	"context"
	"strings"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// All returns every place ordered by name.
func (repo *placeRepository) All(ctx context.Context) ([]*entity.Place, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list places")
}

// ByCategory returns the places of one category.
func (repo *placeRepository) ByCategory(ctx context.Context, category entity.PlaceCategory) ([]*entity.Place, error) {
	return repo.find(repo.db.WithContext(ctx).Where("category = ?", string(category)), "failed to list places by category")
}

// SearchByText matches query against name, address and description with ILIKE.
func (repo *placeRepository) SearchByText(ctx context.Context, query string, category *entity.PlaceCategory) ([]*entity.Place, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	tx := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR address ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	if category != nil {
		tx = tx.Where("category = ?", string(*category))
	}

	return repo.find(tx, "failed to search places")
}

// CountByCategory groups places by category.
func (repo *placeRepository) CountByCategory(ctx context.Context) (map[entity.PlaceCategory]int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count places by category")
	}

	counts := make(map[entity.PlaceCategory]int64, len(rows))
	for _, row := range rows {
		// Unknown store values fold into OTHER.
		counts[entity.ParsePlaceCategory(row.Category)] += row.Total
	}

	return counts, nil
}

// FindByID retrieves a place.
func (repo *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// Create inserts a place.
func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	if place.ID == uuid.Nil {
		place.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(fromPlaceDomain(place)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	return nil
}

func (repo *placeRepository) find(tx *gorm.DB, errMsg string) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel
	if err := tx.Order("name ASC, id ASC").Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:           data.ID,
		Name:         data.Name,
		Category:     entity.ParsePlaceCategory(data.Category),
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Rating:       data.Rating,
		Description:  data.Description,
		ImageURL:     derefString(data.ImageURL),
		OpeningHours: data.OpeningHours,
	}
}

func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	return &model.PlaceModel{
		ID:           data.ID,
		Name:         data.Name,
		Category:     string(data.Category),
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Rating:       data.Rating,
		Description:  data.Description,
		ImageURL:     nullableString(data.ImageURL),
		OpeningHours: data.OpeningHours,
	}
}
