package impl

import (
	"context"
	"testing"
	"time"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/geo"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/memory"
	mockRepo "mapic/internal/mocks/repository"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	originLat = 10.7797
	originLon = 106.6991
)

type discoveryServiceFixtures struct {
	service usecase.DiscoveryUsecase
	store   *memory.Store
	clock   *fakeClock
	me      *entity.User
}

func createTestDiscoveryService(t *testing.T) discoveryServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	clock := newFakeClock(testNow)

	service, err := NewDiscoveryService(DiscoveryServiceParams{
		FriendshipRepo: store.Friendships(),
		UserRepo:       store.Users(),
		LocationRepo:   store.Locations(),
		Clock:          clock,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	require.NoError(t, err)

	me := seedUser(t, store, "Me", "me@example.com")

	return discoveryServiceFixtures{service: service, store: store, clock: clock, me: me}
}

func (fx discoveryServiceFixtures) friend(t *testing.T, name, email string) *entity.User {
	t.Helper()

	user := seedUser(t, fx.store, name, email)
	seedFriendship(t, fx.store, fx.me.ID, user.ID, entity.FriendStatusAccepted)

	return user
}

func friendIDs(result *usecase.DiscoveryResult) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(result.Friends))
	for _, f := range result.Friends {
		ids = append(ids, f.UserID)
	}

	return ids
}

func TestDiscoveryService_Search_ExcludesFriendsWithoutLocation(t *testing.T) {
	fx := createTestDiscoveryService(t)
	ctx := context.Background()

	located := fx.friend(t, "Located", "located@example.com")
	fx.friend(t, "Silent", "silent@example.com")
	seedSample(t, fx.store, located.ID, originLat, originLon, "walking", testNow)

	criteria := []*usecase.DiscoveryCriteria{
		nil,
		{Presence: entity.PresenceAll},
		{Query: "silent"},
		{Presence: entity.PresenceOffline},
	}
	for _, c := range criteria {
		result, err := fx.service.Search(ctx, fx.me.ID, c)
		require.NoError(t, err)
		for _, f := range result.Friends {
			assert.NotEqual(t, "Silent", f.Name)
		}
	}

	result, err := fx.service.Search(ctx, fx.me.ID, nil)
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Equal(t, []uuid.UUID{located.ID}, friendIDs(result))
}

func TestDiscoveryService_Search_MaxDistanceIsInclusive(t *testing.T) {
	fx := createTestDiscoveryService(t)
	ctx := context.Background()

	near := fx.friend(t, "Near", "near@example.com")
	far := fx.friend(t, "Far", "far@example.com")
	nearLat := northOf(originLat, 1000)
	seedSample(t, fx.store, near.ID, nearLat, originLon, "walking", testNow)
	seedSample(t, fx.store, far.ID, northOf(originLat, 1200), originLon, "walking", testNow)

	lat, lon := originLat, originLon
	maxDistance := geo.DistanceBetween(originLat, originLon, nearLat, originLon)
	require.InDelta(t, 1000, maxDistance, 0.01)

	result, err := fx.service.Search(ctx, fx.me.ID, &usecase.DiscoveryCriteria{
		MaxDistanceMeters: &maxDistance,
		Latitude:          &lat,
		Longitude:         &lon,
	})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{near.ID}, friendIDs(result))
	assert.InDelta(t, 1000, *result.Friends[0].DistanceMeters, 0.01)
}

func TestDiscoveryService_Search_MaxDistanceIgnoredWithoutOrigin(t *testing.T) {
	fx := createTestDiscoveryService(t)

	far := fx.friend(t, "Far", "far@example.com")
	seedSample(t, fx.store, far.ID, northOf(originLat, 5000), originLon, "walking", testNow)

	maxDistance := 10.0
	result, err := fx.service.Search(context.Background(), fx.me.ID, &usecase.DiscoveryCriteria{MaxDistanceMeters: &maxDistance})
	require.NoError(t, err)
	require.Len(t, result.Friends, 1)
	assert.Nil(t, result.Friends[0].DistanceMeters)
}

func TestDiscoveryService_Search_SortsByDistanceWithOrigin(t *testing.T) {
	fx := createTestDiscoveryService(t)

	a := fx.friend(t, "A", "a@example.com")
	b := fx.friend(t, "B", "b@example.com")
	c := fx.friend(t, "C", "c@example.com")
	seedSample(t, fx.store, a.ID, northOf(originLat, 900), originLon, "walking", testNow)
	seedSample(t, fx.store, b.ID, northOf(originLat, 100), originLon, "walking", testNow)
	seedSample(t, fx.store, c.ID, northOf(originLat, 400), originLon, "walking", testNow)

	lat, lon := originLat, originLon
	result, err := fx.service.Search(context.Background(), fx.me.ID, &usecase.DiscoveryCriteria{Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, friendIDs(result))

	result, err = fx.service.Search(context.Background(), fx.me.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, friendIDs(result), "edge order without an origin")
}

func TestDiscoveryService_Search_Filters(t *testing.T) {
	fx := createTestDiscoveryService(t)

	walker := fx.friend(t, "Walker Nguyen", "walker@example.com")
	driver := fx.friend(t, "Driver Tran", "dt@example.com")
	sleeper := fx.friend(t, "Sleeper", "sleep@example.com")
	seedSample(t, fx.store, walker.ID, originLat, originLon, "Walking", testNow.Add(-2*time.Minute))
	seedSample(t, fx.store, driver.ID, originLat, originLon, "driving", testNow.Add(-10*time.Minute))
	seedSample(t, fx.store, sleeper.ID, originLat, originLon, "hovering", testNow.Add(-2*time.Hour))

	tests := []struct {
		name     string
		criteria *usecase.DiscoveryCriteria
		want     []uuid.UUID
	}{
		{name: "query matches name case-insensitively", criteria: &usecase.DiscoveryCriteria{Query: "nGUYEN"}, want: []uuid.UUID{walker.ID}},
		{name: "query matches email", criteria: &usecase.DiscoveryCriteria{Query: "dt@"}, want: []uuid.UUID{driver.ID}},
		{name: "online", criteria: &usecase.DiscoveryCriteria{Presence: entity.PresenceOnline}, want: []uuid.UUID{walker.ID}},
		{name: "away", criteria: &usecase.DiscoveryCriteria{Presence: entity.PresenceAway}, want: []uuid.UUID{driver.ID}},
		{name: "offline", criteria: &usecase.DiscoveryCriteria{Presence: entity.PresenceOffline}, want: []uuid.UUID{sleeper.ID}},
		{name: "all", criteria: &usecase.DiscoveryCriteria{Presence: entity.PresenceAll}, want: []uuid.UUID{walker.ID, driver.ID, sleeper.ID}},
		{name: "activity is case-insensitive", criteria: &usecase.DiscoveryCriteria{Activity: "WALKING"}, want: []uuid.UUID{walker.ID}},
		{name: "unknown activity matches verbatim", criteria: &usecase.DiscoveryCriteria{Activity: "hovering"}, want: []uuid.UUID{sleeper.ID}},
		{name: "filters combine", criteria: &usecase.DiscoveryCriteria{Query: "tran", Presence: entity.PresenceOnline}, want: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fx.service.Search(context.Background(), fx.me.ID, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, friendIDs(result))
		})
	}
}

func TestDiscoveryService_Search_SnapshotFields(t *testing.T) {
	fx := createTestDiscoveryService(t)

	friend := fx.friend(t, "Snap", "snap@example.com")
	observed := testNow.Add(-40 * time.Minute)
	seedSample(t, fx.store, friend.ID, 10.78, 106.70, "Hovering", observed)

	result, err := fx.service.Search(context.Background(), fx.me.ID, nil)
	require.NoError(t, err)
	require.Len(t, result.Friends, 1)

	snap := result.Friends[0]
	assert.Equal(t, "Snap", snap.Name)
	assert.Equal(t, "snap@example.com", snap.Email)
	assert.Equal(t, entity.PresenceOffline, snap.Presence)
	assert.Equal(t, "Hovering", snap.Activity)
	assert.Equal(t, 10.78, snap.Latitude)
	assert.Equal(t, 106.70, snap.Longitude)
	assert.Equal(t, "2025-03-14 08:50:00", snap.LastSeen)
}

func TestDiscoveryService_Search_FriendshipsOnly(t *testing.T) {
	fx := createTestDiscoveryService(t)

	stranger := seedUser(t, fx.store, "Stranger", "stranger@example.com")
	pending := seedUser(t, fx.store, "Pending", "pending@example.com")
	seedFriendship(t, fx.store, pending.ID, fx.me.ID, entity.FriendStatusPending)
	seedSample(t, fx.store, stranger.ID, originLat, originLon, "walking", testNow)
	seedSample(t, fx.store, pending.ID, originLat, originLon, "walking", testNow)

	// Accepted edge where the caller is the recipient.
	requester := seedUser(t, fx.store, "Requester", "req@example.com")
	seedFriendship(t, fx.store, requester.ID, fx.me.ID, entity.FriendStatusAccepted)
	seedSample(t, fx.store, requester.ID, originLat, originLon, "walking", testNow)

	result, err := fx.service.Search(context.Background(), fx.me.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{requester.ID}, friendIDs(result))
}

func TestDiscoveryService_Search_InvalidOrigin(t *testing.T) {
	fx := createTestDiscoveryService(t)

	lat, lon := 91.0, 0.0
	_, err := fx.service.Search(context.Background(), fx.me.ID, &usecase.DiscoveryCriteria{Latitude: &lat, Longitude: &lon})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestDiscoveryService_Search_DegradesOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userID := uuid.New()

	service, err := NewDiscoveryService(DiscoveryServiceParams{
		FriendshipRepo: friendshipRepo,
		UserRepo:       mockRepo.NewMockUserRepository(t),
		LocationRepo:   mockRepo.NewMockLocationRepository(t),
		Clock:          newFakeClock(testNow),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	require.NoError(t, err)

	friendshipRepo.EXPECT().FindAccepted(ctx, userID).Return(nil, errors.New("connection refused"))

	result, err := service.Search(ctx, userID, nil)
	require.NoError(t, err, "store failures never surface from discovery")
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Friends)
	assert.NotNil(t, result.Friends)
}

func TestDiscoveryService_Search_SkipsFailingFriend(t *testing.T) {
	ctx := context.Background()
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service, err := NewDiscoveryService(DiscoveryServiceParams{
		FriendshipRepo: friendshipRepo,
		UserRepo:       userRepo,
		LocationRepo:   locationRepo,
		Clock:          newFakeClock(testNow),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	require.NoError(t, err)

	me, broken, healthy := uuid.New(), uuid.New(), uuid.New()
	friendshipRepo.EXPECT().FindAccepted(ctx, me).Return([]*entity.Friendship{
		{ID: uuid.New(), UserID: me, FriendID: broken, Status: entity.FriendStatusAccepted},
		{ID: uuid.New(), UserID: healthy, FriendID: me, Status: entity.FriendStatusAccepted},
	}, nil)
	userRepo.EXPECT().FindByID(ctx, broken).Return(nil, errors.New("row decode failed"))
	userRepo.EXPECT().FindByID(ctx, healthy).Return(&entity.User{ID: healthy, Name: "Healthy"}, nil)
	locationRepo.EXPECT().LatestFor(ctx, healthy).Return(&entity.LocationSample{
		UserID:     healthy,
		Latitude:   originLat,
		Longitude:  originLon,
		Activity:   "walking",
		ObservedAt: testNow,
	}, nil)

	result, err := service.Search(ctx, me, nil)
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Equal(t, []uuid.UUID{healthy}, friendIDs(result))
}

func TestDiscoveryService_Nearby_EndToEnd(t *testing.T) {
	fx := createTestDiscoveryService(t)

	b := fx.friend(t, "B", "b@example.com")
	seedSample(t, fx.store, b.ID, 10.78, 106.70, "walking", testNow.Add(-2*time.Minute))

	result, err := fx.service.Nearby(context.Background(), fx.me.ID, 10.781, 106.701, 0)
	require.NoError(t, err)
	require.Len(t, result.Friends, 1)

	got := result.Friends[0]
	assert.Equal(t, b.ID, got.UserID)
	assert.Equal(t, entity.PresenceOnline, got.Presence)
	require.NotNil(t, got.DistanceMeters)
	assert.Greater(t, *got.DistanceMeters, 0.0)
	assert.Less(t, *got.DistanceMeters, 200.0)
}

func TestDiscoveryService_Nearby_IncludesEveryPresenceAndTruncates(t *testing.T) {
	fx := createTestDiscoveryService(t)

	var want []uuid.UUID
	for i, meters := range []float64{300, 100, 200} {
		f := fx.friend(t, "F", uuid.NewString()+"@example.com")
		seedSample(t, fx.store, f.ID, northOf(originLat, meters), originLon, "walking", testNow.Add(-time.Duration(i)*time.Hour))
		want = append(want, f.ID)
	}

	result, err := fx.service.Nearby(context.Background(), fx.me.ID, originLat, originLon, 2)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{want[1], want[2]}, friendIDs(result))
}

func TestDiscoveryService_Profile(t *testing.T) {
	fx := createTestDiscoveryService(t)
	ctx := context.Background()

	friend := fx.friend(t, "Friend", "friend@example.com")
	seedSample(t, fx.store, friend.ID, originLat, originLon, "stationary", testNow.Add(-25*time.Hour))
	seedSample(t, fx.store, friend.ID, originLat, originLon, "walking", testNow.Add(-3*time.Hour))
	seedSample(t, fx.store, friend.ID, northOf(originLat, 500), originLon, "running", testNow.Add(-10*time.Minute))

	lat, lon := originLat, originLon
	profile, err := fx.service.Profile(ctx, fx.me.ID, friend.ID, &lat, &lon)
	require.NoError(t, err)

	assert.Equal(t, entity.PresenceAway, profile.Presence)
	assert.Equal(t, "running", profile.Activity)
	require.NotNil(t, profile.DistanceMeters)
	assert.InDelta(t, 500, *profile.DistanceMeters, 0.01)
	require.Len(t, profile.History, 2, "only the last 24 hours")
	assert.Equal(t, "walking", profile.History[0].Activity)
	assert.Equal(t, "running", profile.History[1].Activity)
}

func TestDiscoveryService_Profile_Errors(t *testing.T) {
	fx := createTestDiscoveryService(t)
	ctx := context.Background()

	stranger := seedUser(t, fx.store, "Stranger", "stranger@example.com")
	seedSample(t, fx.store, stranger.ID, originLat, originLon, "walking", testNow)

	pending := seedUser(t, fx.store, "Pending", "pending@example.com")
	seedFriendship(t, fx.store, fx.me.ID, pending.ID, entity.FriendStatusPending)
	seedSample(t, fx.store, pending.ID, originLat, originLon, "walking", testNow)

	silent := fx.friend(t, "Silent", "silent@example.com")

	_, err := fx.service.Profile(ctx, fx.me.ID, stranger.ID, nil, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFriends))
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	_, err = fx.service.Profile(ctx, fx.me.ID, pending.ID, nil, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFriends))

	_, err = fx.service.Profile(ctx, fx.me.ID, silent.ID, nil, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestDiscoveryService_Profile_StoreError(t *testing.T) {
	ctx := context.Background()
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)

	service, err := NewDiscoveryService(DiscoveryServiceParams{
		FriendshipRepo: friendshipRepo,
		UserRepo:       mockRepo.NewMockUserRepository(t),
		LocationRepo:   mockRepo.NewMockLocationRepository(t),
		Clock:          newFakeClock(testNow),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	require.NoError(t, err)

	me, other := uuid.New(), uuid.New()
	friendshipRepo.EXPECT().FindPair(ctx, me, other).Return(nil, errors.New("timeout"))

	_, err = service.Profile(ctx, me, other, nil, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrFriendshipNotFound))
	assert.Contains(t, err.Error(), "failed to find friendship")
}
