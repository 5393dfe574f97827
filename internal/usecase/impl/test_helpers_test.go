package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"mapic/config"
	"mapic/internal/domain/entity"
	"mapic/internal/domain/geo"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/memory"
	mockRepo "mapic/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		CheckIn: &config.CheckInConfig{Timezone: "UTC"},
	}
	cfg.ApplyDefaults()

	return cfg
}

// fakeClock is a settable service.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// onExecute makes txManager run the transaction body against a mock factory prepared by setup.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	setup(factory)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func seedUser(t *testing.T, store *memory.Store, name, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: email, PasswordHash: "hash", Activated: true}
	require.NoError(t, store.Users().Create(context.Background(), user))

	return user
}

func seedFriendship(t *testing.T, store *memory.Store, requester, recipient uuid.UUID, status entity.FriendStatus) *entity.Friendship {
	t.Helper()

	edge := &entity.Friendship{UserID: requester, FriendID: recipient, Status: status}
	require.NoError(t, store.Friendships().Save(context.Background(), edge))

	return edge
}

func seedSample(t *testing.T, store *memory.Store, userID uuid.UUID, lat, lon float64, activity string, observedAt time.Time) {
	t.Helper()

	sample := &entity.LocationSample{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		Activity:   activity,
		ObservedAt: observedAt,
	}
	require.NoError(t, store.Locations().Save(context.Background(), sample))
}

func seedPlace(t *testing.T, store *memory.Store, name string, category entity.PlaceCategory, lat, lon, rating float64) *entity.Place {
	t.Helper()

	place := &entity.Place{Name: name, Category: category, Latitude: lat, Longitude: lon, Rating: rating}
	require.NoError(t, store.Places().Create(context.Background(), place))

	return place
}

// northOf returns the latitude meters north of lat along a meridian.
func northOf(lat, meters float64) float64 {
	return lat + meters/geo.EarthRadiusMeters*180/math.Pi
}
