package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/geo"
	"mapic/internal/domain/presence"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	clock          service.Clock
	zone           *time.Location
	nearbyLimit    int
	historyWindow  time.Duration
	logger         *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDiscoveryService creates a new friend discovery service instance.
func NewDiscoveryService(params DiscoveryServiceParams) (usecase.DiscoveryUsecase, error) {
	zone, err := zoneOf(params.Config)
	if err != nil {
		return nil, err
	}

	nearbyLimit, historyWindow := 20, 24*time.Hour
	if d := params.Config.Discovery; d != nil {
		if d.NearbyLimit > 0 {
			nearbyLimit = d.NearbyLimit
		}
		if d.HistoryWindow > 0 {
			historyWindow = d.HistoryWindow
		}
	}

	return &discoveryService{
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		locationRepo:   params.LocationRepo,
		clock:          params.Clock,
		zone:           zone,
		nearbyLimit:    nearbyLimit,
		historyWindow:  historyWindow,
		logger:         params.Logger,
	}, nil
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search walks the caller's accepted friendships. A friend whose data cannot be
// loaded is skipped; a failure to load the friendships themselves degrades the
// whole result to empty.
func (srv *discoveryService) Search(ctx context.Context, userID uuid.UUID, criteria *usecase.DiscoveryCriteria) (*usecase.DiscoveryResult, error) {
	if criteria == nil {
		criteria = &usecase.DiscoveryCriteria{}
	}
	originLat, originLon, hasOrigin, err := originOf(criteria.Latitude, criteria.Longitude)
	if err != nil {
		return nil, err
	}

	edges, err := srv.friendshipRepo.FindAccepted(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Friend discovery degraded", slog.String("userID", userID.String()), slog.Any("error", err))

		return &usecase.DiscoveryResult{Friends: []*usecase.FriendSnapshot{}, Degraded: true}, nil
	}

	now := srv.clock.Now()
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	friends := make([]*usecase.FriendSnapshot, 0, len(edges))

	for _, edge := range edges {
		friendID := edge.Other(userID)

		snapshot, err := srv.snapshot(ctx, friendID, now)
		if err != nil {
			if !errors.Is(err, repository.ErrLocationNotFound) {
				srv.log(ctx).Debug("Skipping friend", slog.String("friendID", friendID.String()), slog.Any("error", err))
			}

			continue
		}

		if !matchesText(snapshot, query) || !matchesPresence(snapshot, criteria.Presence) || !matchesActivity(snapshot, criteria.Activity) {
			continue
		}

		if hasOrigin {
			distance := geo.DistanceBetween(originLat, originLon, snapshot.Latitude, snapshot.Longitude)
			if criteria.MaxDistanceMeters != nil && distance > *criteria.MaxDistanceMeters {
				continue
			}
			snapshot.DistanceMeters = &distance
		}

		friends = append(friends, snapshot)
	}

	if hasOrigin {
		slices.SortStableFunc(friends, func(a, b *usecase.FriendSnapshot) int {
			return compareDistance(a.DistanceMeters, b.DistanceMeters)
		})
	}

	return &usecase.DiscoveryResult{Friends: friends}, nil
}

func (srv *discoveryService) Nearby(ctx context.Context, userID uuid.UUID, lat, lon float64, limit int) (*usecase.DiscoveryResult, error) {
	if limit <= 0 {
		limit = srv.nearbyLimit
	}

	result, err := srv.Search(ctx, userID, &usecase.DiscoveryCriteria{
		Presence:  entity.PresenceAll,
		Latitude:  &lat,
		Longitude: &lon,
	})
	if err != nil {
		return nil, err
	}

	located := result.Friends[:0]
	for _, friend := range result.Friends {
		if friend.DistanceMeters != nil {
			located = append(located, friend)
		}
	}
	if len(located) > limit {
		located = located[:limit]
	}
	result.Friends = located

	return result, nil
}

func (srv *discoveryService) Profile(ctx context.Context, userID, friendID uuid.UUID, lat, lon *float64) (*usecase.FriendProfile, error) {
	originLat, originLon, hasOrigin, err := originOf(lat, lon)
	if err != nil {
		return nil, err
	}

	edge, err := srv.friendshipRepo.FindPair(ctx, userID, friendID)
	if errors.Is(err, repository.ErrFriendshipNotFound) {
		return nil, domainerrors.ErrNotFriends.WrapMessage("no friendship between users")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friendship")
	}
	if edge.Status != entity.FriendStatusAccepted {
		return nil, domainerrors.ErrNotFriends.WrapMessage("friend request not accepted")
	}

	now := srv.clock.Now()
	snapshot, err := srv.snapshot(ctx, friendID, now)
	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		return nil, domainerrors.ErrLocationNotFound.WrapMessage("friend has not reported a location")
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, domainerrors.ErrUserNotFound.WrapMessage("friend account no longer exists")
	case err != nil:
		return nil, err
	}

	if hasOrigin {
		distance := geo.DistanceBetween(originLat, originLon, snapshot.Latitude, snapshot.Longitude)
		snapshot.DistanceMeters = &distance
	}

	samples, err := srv.locationRepo.HistorySince(ctx, friendID, now.Add(-srv.historyWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load friend history")
	}

	history := make([]usecase.HistoryPoint, 0, len(samples))
	for _, s := range samples {
		history = append(history, usecase.HistoryPoint{
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			Activity:   s.Activity,
			ObservedAt: s.ObservedAt,
		})
	}

	return &usecase.FriendProfile{FriendSnapshot: snapshot, History: history}, nil
}

func (srv *discoveryService) snapshot(ctx context.Context, friendID uuid.UUID, now time.Time) (*usecase.FriendSnapshot, error) {
	user, err := srv.userRepo.FindByID(ctx, friendID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend")
	}

	latest, err := srv.locationRepo.LatestFor(ctx, friendID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return &usecase.FriendSnapshot{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		AvatarURL:  user.AvatarURL,
		Presence:   presence.Classify(latest.ObservedAt, now),
		Activity:   latest.Activity,
		Latitude:   latest.Latitude,
		Longitude:  latest.Longitude,
		LastSeen:   latest.ObservedAt.In(srv.zone).Format(lastSeenLayout),
		ObservedAt: latest.ObservedAt,
	}, nil
}

func matchesText(s *usecase.FriendSnapshot, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Email), query) ||
		strings.Contains(strings.ToLower(s.Phone), query)
}

func matchesPresence(s *usecase.FriendSnapshot, tier entity.PresenceTier) bool {
	if tier == "" || tier == entity.PresenceAll {
		return true
	}

	return s.Presence == tier
}

func matchesActivity(s *usecase.FriendSnapshot, activity string) bool {
	if strings.TrimSpace(activity) == "" {
		return true
	}

	return entity.ActivityTag(strings.TrimSpace(s.Activity)).Matches(activity)
}
