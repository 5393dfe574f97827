package impl

import (
	"context"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/service"
	"mapic/internal/infra/persistence/memory"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service usecase.AccountUsecase
	store   *memory.Store
	outbox  *outbox
	me      *entity.User
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	cfg := newTestConfig()
	dispatcher, box := newRecordingDispatcher(t)

	otp := NewOtpService(OtpServiceParams{
		TxManager: store.TxManager(),
		OtpRepo:   store.Otps(),
		Clock:     newFakeClock(testNow),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	service := NewAccountService(AccountServiceParams{
		UserRepo:   store.Users(),
		Otp:        otp,
		Hasher:     newPrefixHasher(t),
		Dispatcher: dispatcher,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	me := &entity.User{Name: "Me", Email: "me@example.com", PasswordHash: "hashed:old-secret", Activated: true}
	require.NoError(t, store.Users().Create(context.Background(), me))

	return accountServiceFixtures{service: service, store: store, outbox: box, me: me}
}

func strPtr(s string) *string { return &s }

func TestAccountService_Me(t *testing.T) {
	fx := createTestAccountService(t)

	user, err := fx.service.Me(context.Background(), fx.me.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)

	_, err = fx.service.Me(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user, err := fx.service.UpdateProfile(ctx, fx.me.ID, &usecase.UpdateProfileInput{AvatarURL: strPtr("https://cdn.example.com/me.png")})
	require.NoError(t, err)
	assert.Equal(t, "Me", user.Name)
	assert.Equal(t, "https://cdn.example.com/me.png", user.AvatarURL)

	user, err = fx.service.UpdateProfile(ctx, fx.me.ID, &usecase.UpdateProfileInput{Name: strPtr("  Renamed ")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "https://cdn.example.com/me.png", user.AvatarURL)

	_, err = fx.service.UpdateProfile(ctx, fx.me.ID, &usecase.UpdateProfileInput{Name: strPtr(" ")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_ChangePassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	err := fx.service.ChangePassword(ctx, fx.me.ID, "not-it", "new-secret")
	assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))

	err = fx.service.ChangePassword(ctx, fx.me.ID, "old-secret", "short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))

	require.NoError(t, fx.service.ChangePassword(ctx, fx.me.ID, "old-secret", "new-secret"))

	stored, err := fx.store.Users().FindByID(ctx, fx.me.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:new-secret", stored.PasswordHash)
}

func TestAccountService_ChangeEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.SendChangeOtp(ctx, fx.me.ID, "Fresh@Example.com", entity.OtpChangeEmail))
	require.Len(t, fx.outbox.events, 1)
	assert.Equal(t, service.ChannelEmail, fx.outbox.events[0].Channel)
	code := fx.outbox.lastCode("fresh@example.com")

	_, err := fx.service.ChangeEmail(ctx, fx.me.ID, "fresh@example.com", "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))

	user, err := fx.service.ChangeEmail(ctx, fx.me.ID, "fresh@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", user.Email)

	_, err = fx.service.ChangeEmail(ctx, fx.me.ID, "fresh@example.com", code)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))
}

func TestAccountService_ChangeEmail_TakenAfterCodeSent(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.SendChangeOtp(ctx, fx.me.ID, "contested@example.com", entity.OtpChangeEmail))
	code := fx.outbox.lastCode("contested@example.com")

	seedUser(t, fx.store, "Other", "contested@example.com")

	_, err := fx.service.ChangeEmail(ctx, fx.me.ID, "contested@example.com", code)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAccountService_ChangePhone(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.SendChangeOtp(ctx, fx.me.ID, " +84911111111 ", entity.OtpChangePhone))
	require.Len(t, fx.outbox.events, 1)
	assert.Equal(t, service.ChannelSMS, fx.outbox.events[0].Channel)
	code := fx.outbox.lastCode("+84911111111")

	user, err := fx.service.ChangePhone(ctx, fx.me.ID, "+84911111111", code)
	require.NoError(t, err)
	assert.Equal(t, "+84911111111", user.Phone)
}

func TestAccountService_SendChangeOtp_Rejections(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	other := seedUser(t, fx.store, "Other", "other@example.com")
	other.Phone = "+84922222222"
	require.NoError(t, fx.store.Users().Update(ctx, other))

	tests := []struct {
		name       string
		identifier string
		purpose    entity.OtpPurpose
		wantErr    error
	}{
		{"email in use", "OTHER@example.com", entity.OtpChangeEmail, domainerrors.ErrEmailInUse},
		{"own email counts as in use", "me@example.com", entity.OtpChangeEmail, domainerrors.ErrEmailInUse},
		{"phone in use", "+84922222222", entity.OtpChangePhone, domainerrors.ErrPhoneInUse},
		{"wrong purpose", "x@example.com", entity.OtpActivation, domainerrors.ErrValidationFailed},
		{"empty identifier", "  ", entity.OtpChangeEmail, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.service.SendChangeOtp(ctx, fx.me.ID, tt.identifier, tt.purpose)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
	assert.Empty(t, fx.outbox.events)
}
