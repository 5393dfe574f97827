package impl

import (
	"context"
	"testing"
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/infra/persistence/memory"
	"mapic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_Sweep(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	clock := newFakeClock(testNow)
	cfg := newTestConfig()

	otp := NewOtpService(OtpServiceParams{
		TxManager: store.TxManager(),
		OtpRepo:   store.Otps(),
		Clock:     clock,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	location := NewLocationService(LocationServiceParams{
		LocationRepo:   store.Locations(),
		FriendshipRepo: store.Friendships(),
		UserRepo:       store.Users(),
		Clock:          clock,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
	service := NewMaintenanceService(MaintenanceServiceParams{
		Otp:      otp,
		Location: location,
		Logger:   newDiscardLogger(),
	})

	user := seedUser(t, store, "Walker", "walker@example.com")
	seedSample(t, store, user.ID, 1, 1, "walking", testNow.Add(-31*24*time.Hour))
	seedSample(t, store, user.ID, 2, 2, "walking", testNow.Add(-29*24*time.Hour))

	_, err := otp.Issue(ctx, "walker@example.com", entity.OtpActivation)
	require.NoError(t, err)
	_, err = otp.Issue(ctx, "other@example.com", entity.OtpResetPassword)
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	_, err = otp.Issue(ctx, "walker@example.com", entity.OtpResetPassword)
	require.NoError(t, err)

	report, err := service.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SweepReport{ExpiredOtps: 2, OldLocations: 1}, report)

	from, to := testNow.Add(-60*24*time.Hour), testNow
	history, err := location.History(ctx, user.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2.0, history[0].Latitude)

	again, err := service.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.ExpiredOtps)
	assert.Zero(t, again.OldLocations)
}
