package impl

import (
	"context"
	"log/slog"
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

const defaultHistoryWindow = 24 * time.Hour

type locationService struct {
	locationRepo   repository.LocationRepository
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	clock          service.Clock
	retention      time.Duration
	logger         *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo   repository.LocationRepository
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	retention := 30 * 24 * time.Hour
	if params.Config.Location != nil && params.Config.Location.Retention > 0 {
		retention = params.Config.Location.Retention
	}

	return &locationService{
		locationRepo:   params.LocationRepo,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		clock:          params.Clock,
		retention:      retention,
		logger:         params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Report stores a new sample for the user
func (s *locationService) Report(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (*entity.LocationSample, error) {
	if input == nil || !geo.Valid(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	now := s.clock.Now()
	activity := strings.TrimSpace(input.Activity)
	if activity == "" {
		activity = string(entity.ActivityStationary)
	}
	observedAt := now
	if input.ObservedAt != nil && !input.ObservedAt.IsZero() {
		observedAt = *input.ObservedAt
	}

	sample := &entity.LocationSample{
		UserID:     userID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Speed:      input.Speed,
		Heading:    input.Heading,
		Accuracy:   input.Accuracy,
		Activity:   activity,
		ObservedAt: observedAt,
		RecordedAt: now,
	}

	if err := s.locationRepo.Save(ctx, sample); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("report location failed")
		}

		return nil, errors.Wrap(err, "failed to save location")
	}

	return sample, nil
}

// Latest returns the caller's most recent sample
func (s *locationService) Latest(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	sample, err := s.locationRepo.LatestFor(ctx, userID)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return nil, domainerrors.ErrLocationNotFound.WrapMessage("no location reported")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return sample, nil
}

// FriendLatest returns a friend's most recent sample
func (s *locationService) FriendLatest(ctx context.Context, userID, friendID uuid.UUID) (*entity.LocationSample, error) {
	edge, err := s.friendshipRepo.FindPair(ctx, userID, friendID)
	if errors.Is(err, repository.ErrFriendshipNotFound) || (err == nil && edge.Status != entity.FriendStatusAccepted) {
		return nil, domainerrors.ErrNotFriends.WrapMessage("friend location requested")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friendship")
	}

	return s.Latest(ctx, friendID)
}

// History returns the caller's samples in [from, to], oldest first
func (s *locationService) History(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.LocationSample, error) {
	end := s.clock.Now()
	if to != nil {
		end = *to
	}
	start := end.Add(-defaultHistoryWindow)
	if from != nil {
		start = *from
	}
	if start.After(end) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	samples, err := s.locationRepo.HistoryBetween(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	return samples, nil
}

// FriendsLatest returns the latest sample of each accepted friend, in friendship order
func (s *locationService) FriendsLatest(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendLocation, error) {
	edges, err := s.friendshipRepo.FindAccepted(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friends")
	}
	if len(edges) == 0 {
		return []*usecase.FriendLocation{}, nil
	}

	ids := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.Other(userID))
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend accounts")
	}
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	latest, err := s.locationRepo.LatestForMany(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend locations")
	}

	out := make([]*usecase.FriendLocation, 0, len(ids))
	for _, id := range ids {
		user, sample := byID[id], latest[id]
		if user == nil || sample == nil {
			continue
		}
		out = append(out, &usecase.FriendLocation{
			UserID:    id,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
			Location:  sample,
		})
	}

	return out, nil
}

// CleanupOld deletes samples past the retention period
func (s *locationService) CleanupOld(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.retention)

	deleted, err := s.locationRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old locations")
	}

	s.log(ctx).Info("Old locations cleaned up", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))

	return deleted, nil
}
