package impl

import (
	"context"
	"testing"
	"time"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/infra/persistence/memory"
	mockRepo "mapic/internal/mocks/repository"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service usecase.LocationUsecase
	store   *memory.Store
	clock   *fakeClock
	me      *entity.User
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	clock := newFakeClock(testNow)

	service := NewLocationService(LocationServiceParams{
		LocationRepo:   store.Locations(),
		FriendshipRepo: store.Friendships(),
		UserRepo:       store.Users(),
		Clock:          clock,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return locationServiceFixtures{
		service: service,
		store:   store,
		clock:   clock,
		me:      seedUser(t, store, "Me", "me@example.com"),
	}
}

func TestLocationService_Report_Defaults(t *testing.T) {
	fx := createTestLocationService(t)

	sample, err := fx.service.Report(context.Background(), fx.me.ID, &usecase.ReportLocationInput{
		Latitude:  10.78,
		Longitude: 106.70,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sample.ID)
	assert.Equal(t, "stationary", sample.Activity)
	assert.Equal(t, testNow, sample.ObservedAt)
	assert.Equal(t, testNow, sample.RecordedAt)
}

func TestLocationService_Report_KeepsRawActivityAndObservedAt(t *testing.T) {
	fx := createTestLocationService(t)

	observed := testNow.Add(-time.Minute)
	speed := 1.4
	sample, err := fx.service.Report(context.Background(), fx.me.ID, &usecase.ReportLocationInput{
		Latitude:   10.78,
		Longitude:  106.70,
		Speed:      &speed,
		Activity:   "Skateboarding",
		ObservedAt: &observed,
	})
	require.NoError(t, err)
	assert.Equal(t, "Skateboarding", sample.Activity)
	assert.Equal(t, entity.ActivityUnknown, sample.Tag())
	assert.Equal(t, observed, sample.ObservedAt)
	assert.Equal(t, &speed, sample.Speed)

	latest, err := fx.service.Latest(context.Background(), fx.me.ID)
	require.NoError(t, err)
	assert.Equal(t, sample.ID, latest.ID)
}

func TestLocationService_Report_Invalid(t *testing.T) {
	fx := createTestLocationService(t)

	_, err := fx.service.Report(context.Background(), fx.me.ID, &usecase.ReportLocationInput{Latitude: 95, Longitude: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))

	_, err = fx.service.Report(context.Background(), uuid.New(), &usecase.ReportLocationInput{Latitude: 1, Longitude: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestLocationService_Latest_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	_, err := fx.service.Latest(context.Background(), fx.me.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_FriendLatest(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	friend := seedUser(t, fx.store, "Friend", "friend@example.com")
	stranger := seedUser(t, fx.store, "Stranger", "stranger@example.com")
	seedFriendship(t, fx.store, friend.ID, fx.me.ID, entity.FriendStatusAccepted)
	seedSample(t, fx.store, friend.ID, 10.78, 106.70, "walking", testNow)
	seedSample(t, fx.store, stranger.ID, 10.78, 106.70, "walking", testNow)

	sample, err := fx.service.FriendLatest(ctx, fx.me.ID, friend.ID)
	require.NoError(t, err)
	assert.Equal(t, friend.ID, sample.UserID)

	_, err = fx.service.FriendLatest(ctx, fx.me.ID, stranger.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFriends))
}

func TestLocationService_History(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	seedSample(t, fx.store, fx.me.ID, 1, 1, "walking", testNow.Add(-30*time.Hour))
	seedSample(t, fx.store, fx.me.ID, 2, 2, "walking", testNow.Add(-5*time.Hour))
	seedSample(t, fx.store, fx.me.ID, 3, 3, "walking", testNow.Add(-time.Hour))

	samples, err := fx.service.History(ctx, fx.me.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 2.0, samples[0].Latitude)
	assert.Equal(t, 3.0, samples[1].Latitude)

	from, to := testNow.Add(-31*time.Hour), testNow.Add(-4*time.Hour)
	samples, err = fx.service.History(ctx, fx.me.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 1.0, samples[0].Latitude)

	_, err = fx.service.History(ctx, fx.me.ID, &to, &from)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_FriendsLatest(t *testing.T) {
	fx := createTestLocationService(t)

	first := seedUser(t, fx.store, "First", "first@example.com")
	silent := seedUser(t, fx.store, "Silent", "silent@example.com")
	second := seedUser(t, fx.store, "Second", "second@example.com")
	seedFriendship(t, fx.store, fx.me.ID, first.ID, entity.FriendStatusAccepted)
	seedFriendship(t, fx.store, silent.ID, fx.me.ID, entity.FriendStatusAccepted)
	seedFriendship(t, fx.store, second.ID, fx.me.ID, entity.FriendStatusAccepted)
	seedSample(t, fx.store, first.ID, 1, 1, "walking", testNow.Add(-time.Hour))
	seedSample(t, fx.store, first.ID, 1.5, 1.5, "walking", testNow)
	seedSample(t, fx.store, second.ID, 2, 2, "driving", testNow)

	friends, err := fx.service.FriendsLatest(context.Background(), fx.me.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "First", friends[0].Name)
	assert.Equal(t, 1.5, friends[0].Location.Latitude)
	assert.Equal(t, "Second", friends[1].Name)
}

func TestLocationService_FriendsLatest_NoFriends(t *testing.T) {
	fx := createTestLocationService(t)

	friends, err := fx.service.FriendsLatest(context.Background(), fx.me.ID)
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}

func TestLocationService_CleanupOld(t *testing.T) {
	ctx := context.Background()
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo:   locationRepo,
		FriendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		UserRepo:       mockRepo.NewMockUserRepository(t),
		Clock:          newFakeClock(testNow),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	locationRepo.EXPECT().DeleteOlderThan(ctx, testNow.Add(-30*24*time.Hour)).Return(7, nil)

	deleted, err := service.CleanupOld(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestLocationService_CleanupOld_Error(t *testing.T) {
	ctx := context.Background()
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo:   locationRepo,
		FriendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		UserRepo:       mockRepo.NewMockUserRepository(t),
		Clock:          newFakeClock(testNow),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	locationRepo.EXPECT().DeleteOlderThan(ctx, testNow.Add(-30*24*time.Hour)).Return(0, errors.New("disk full"))

	_, err := service.CleanupOld(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete old locations")
}
