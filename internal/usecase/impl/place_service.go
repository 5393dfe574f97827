package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/geo"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	allCategoriesLabel = "All"
	allCategoriesIcon  = "🌟"
	fallbackIcon       = "📍"
)

var categoryIcons = map[entity.PlaceCategory]string{
	entity.CategoryCafe:          "☕",
	entity.CategoryRestaurant:    "🍜",
	entity.CategoryPark:          "🏞️",
	entity.CategoryMuseum:        "🏛️",
	entity.CategoryShopping:      "🛍️",
	entity.CategoryEntertainment: "🎭",
	entity.CategoryOther:         "📍",
}

// placeService implements the PlaceUsecase interface.
type placeService struct {
	txManager   repository.TransactionManager
	placeRepo   repository.PlaceRepository
	checkInRepo repository.CheckInRepository
	clock       service.Clock
	zone        *time.Location
	cfg         *config.PlacesConfig
	logger      *slog.Logger
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PlaceRepo   repository.PlaceRepository
	CheckInRepo repository.CheckInRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPlaceService creates a new place service instance.
func NewPlaceService(params PlaceServiceParams) (usecase.PlaceUsecase, error) {
	zone, err := zoneOf(params.Config)
	if err != nil {
		return nil, err
	}

	cfg := params.Config.Places
	if cfg == nil {
		cfg = &config.PlacesConfig{}
	}
	cfg.ApplyDefaults()

	return &placeService{
		txManager:   params.TxManager,
		placeRepo:   params.PlaceRepo,
		checkInRepo: params.CheckInRepo,
		clock:       params.Clock,
		zone:        zone,
		cfg:         cfg,
		logger:      params.Logger,
	}, nil
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// distanceFactor buckets distance into walking tiers.
func distanceFactor(meters float64) float64 {
	switch {
	case meters < 1000:
		return 1.0
	case meters < 3000:
		return 0.8
	case meters < 5000:
		return 0.5
	case meters < 10000:
		return 0.3
	default:
		return 0.1
	}
}

// TopPlaces scores every place within radiusKm as checkIns × rating × distanceFactor.
func (srv *placeService) TopPlaces(ctx context.Context, lat, lon float64, limit int, radiusKm float64) ([]*usecase.PlaceView, error) {
	if !geo.Valid(lat, lon) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if limit <= 0 {
		limit = srv.cfg.PopularLimit
	}
	if radiusKm <= 0 {
		radiusKm = srv.cfg.PopularRadiusKm
	}
	radius := radiusKm * 1000

	places, err := srv.placeRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load places")
	}

	center := geo.Point(lat, lon)
	area := geo.Around(center, radius)

	views := make([]*usecase.PlaceView, 0, len(places))
	for _, p := range places {
		point := geo.Point(p.Latitude, p.Longitude)
		if !area.MayContain(point) {
			continue
		}
		distance := geo.DistanceMeters(center, point)
		if distance > radius {
			continue
		}
		view := toPlaceView(p)
		view.DistanceMeters = &distance
		views = append(views, view)
	}

	if err := srv.attachCounts(ctx, views); err != nil {
		return nil, err
	}

	for _, v := range views {
		v.Score = float64(v.CheckInCount) * v.Rating * distanceFactor(*v.DistanceMeters)
	}
	slices.SortStableFunc(views, func(a, b *usecase.PlaceView) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(views) > limit {
		views = views[:limit]
	}

	srv.log(ctx).Debug("Ranked popular places", slog.Int("candidates", len(places)), slog.Int("returned", len(views)))

	return views, nil
}

func (srv *placeService) CategoriesWithCounts(ctx context.Context) ([]*usecase.CategoryCount, error) {
	counts, err := srv.placeRepo.CountByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count places by category")
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	out := []*usecase.CategoryCount{{Category: allCategoriesLabel, Icon: allCategoriesIcon, Count: total}}
	for _, category := range entity.PlaceCategories {
		if counts[category] == 0 {
			continue
		}
		out = append(out, &usecase.CategoryCount{
			Category: string(category),
			Icon:     categoryIcon(category),
			Count:    counts[category],
		})
	}

	return out, nil
}

func categoryIcon(category entity.PlaceCategory) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}

	return fallbackIcon
}

func (srv *placeService) Search(ctx context.Context, criteria *usecase.PlaceSearchCriteria) ([]*usecase.PlaceView, error) {
	if criteria == nil {
		criteria = &usecase.PlaceSearchCriteria{}
	}
	originLat, originLon, hasOrigin, err := originOf(criteria.Latitude, criteria.Longitude)
	if err != nil {
		return nil, err
	}

	var places []*entity.Place
	query := strings.TrimSpace(criteria.Query)
	switch {
	case query != "":
		places, err = srv.placeRepo.SearchByText(ctx, query, criteria.Category)
	case criteria.Category != nil:
		places, err = srv.placeRepo.ByCategory(ctx, *criteria.Category)
	default:
		places, err = srv.placeRepo.All(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to search places")
	}

	views := make([]*usecase.PlaceView, 0, len(places))
	for _, p := range places {
		view := toPlaceView(p)
		if hasOrigin {
			distance := geo.DistanceBetween(originLat, originLon, p.Latitude, p.Longitude)
			if criteria.RadiusMeters != nil && distance > *criteria.RadiusMeters {
				continue
			}
			view.DistanceMeters = &distance
		}
		views = append(views, view)
	}

	if err := srv.attachCounts(ctx, views); err != nil {
		return nil, err
	}

	if hasOrigin {
		slices.SortStableFunc(views, func(a, b *usecase.PlaceView) int {
			return compareDistance(a.DistanceMeters, b.DistanceMeters)
		})
	}

	return views, nil
}

func (srv *placeService) Nearby(ctx context.Context, lat, lon, radiusMeters float64, category *entity.PlaceCategory) ([]*usecase.PlaceView, error) {
	if radiusMeters <= 0 {
		radiusMeters = srv.cfg.SearchRadiusMeters
	}

	return srv.Search(ctx, &usecase.PlaceSearchCriteria{
		Category:     category,
		Latitude:     &lat,
		Longitude:    &lon,
		RadiusMeters: &radiusMeters,
	})
}

func (srv *placeService) GetPlace(ctx context.Context, placeID uuid.UUID, lat, lon *float64) (*usecase.PlaceView, error) {
	originLat, originLon, hasOrigin, err := originOf(lat, lon)
	if err != nil {
		return nil, err
	}

	place, err := srv.placeRepo.FindByID(ctx, placeID)
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return nil, domainerrors.ErrPlaceNotFound.WrapMessage("get place failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find place")
	}

	view := toPlaceView(place)
	if view.CheckInCount, err = srv.checkInRepo.CountForPlace(ctx, placeID); err != nil {
		return nil, errors.Wrap(err, "failed to count check-ins")
	}
	if hasOrigin {
		distance := geo.DistanceBetween(originLat, originLon, place.Latitude, place.Longitude)
		view.DistanceMeters = &distance
	}

	return view, nil
}

// CheckIn runs the place, same-day and proximity checks and the insert in one transaction.
func (srv *placeService) CheckIn(ctx context.Context, placeID, userID uuid.UUID, lat, lon float64) (*entity.CheckIn, error) {
	if !geo.Valid(lat, lon) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	now := srv.clock.Now()
	local := now.In(srv.zone)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, srv.zone)

	var checkIn *entity.CheckIn
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()
		checkInRepo := repoFactory.CheckInRepo()

		place, err := placeRepo.FindByID(ctx, placeID)
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return domainerrors.ErrPlaceNotFound.WrapMessage("check-in failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find place")
		}

		_, err = checkInRepo.FindTodayCheckIn(ctx, placeID, userID, day)
		if err == nil {
			return domainerrors.ErrDuplicateCheckIn.WrapMessage("check-in failed")
		}
		if !errors.Is(err, repository.ErrCheckInNotFound) {
			return errors.Wrap(err, "failed to find today's check-in")
		}

		distance := geo.DistanceBetween(lat, lon, place.Latitude, place.Longitude)
		if distance > srv.cfg.CheckInRadiusMeters {
			return domainerrors.ErrTooFar.WithDetails(fmt.Sprintf("%.0f m from place, limit %.0f m", distance, srv.cfg.CheckInRadiusMeters))
		}

		record := &entity.CheckIn{
			PlaceID:     placeID,
			UserID:      userID,
			CheckedInAt: now,
			Day:         day,
		}
		switch err := checkInRepo.Save(ctx, record); {
		case errors.Is(err, repository.ErrDuplicateCheckIn):
			return domainerrors.ErrDuplicateCheckIn.WrapMessage("concurrent check-in")
		case errors.Is(err, repository.ErrPlaceNotFound):
			return domainerrors.ErrPlaceNotFound.WrapMessage("place removed during check-in")
		case err != nil:
			return errors.Wrap(err, "failed to save check-in")
		}
		checkIn = record

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Check-in rejected", slog.String("placeID", placeID.String()), slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checked in", slog.String("placeID", placeID.String()), slog.String("userID", userID.String()))

	return checkIn, nil
}

func (srv *placeService) attachCounts(ctx context.Context, views []*usecase.PlaceView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	counts, err := srv.checkInRepo.CountForPlaces(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to count check-ins")
	}
	for _, v := range views {
		v.CheckInCount = counts[v.ID]
	}

	return nil
}

func toPlaceView(p *entity.Place) *usecase.PlaceView {
	return &usecase.PlaceView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Address:      p.Address,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Phone:        p.Phone,
		Rating:       p.Rating,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		OpeningHours: p.OpeningHours,
	}
}
