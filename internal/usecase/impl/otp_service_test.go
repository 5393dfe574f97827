package impl

import (
	"context"
	"testing"
	"time"

	"mapic/config"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/infra/persistence/memory"
	mockRepo "mapic/internal/mocks/repository"
	"mapic/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type otpServiceFixtures struct {
	service usecase.OtpUsecase
	store   *memory.Store
	clock   *fakeClock
}

func createTestOtpService(t *testing.T, mutate ...func(*config.Config)) otpServiceFixtures {
	t.Helper()

	cfg := newTestConfig()
	for _, m := range mutate {
		m(cfg)
	}
	store := memory.NewStore()
	clock := newFakeClock(testNow)

	service := NewOtpService(OtpServiceParams{
		TxManager: store.TxManager(),
		OtpRepo:   store.Otps(),
		Clock:     clock,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return otpServiceFixtures{service: service, store: store, clock: clock}
}

func TestOtpService_Issue_SixDigitCode(t *testing.T) {
	fx := createTestOtpService(t)

	code, err := fx.service.Issue(context.Background(), "a@example.com", entity.OtpActivation)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code %q must be numeric", code)
	}
}

func TestOtpService_Issue_RateLimitedOnSixthCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpResetPassword)
		require.NoError(t, err, "issue %d", i+1)
		fx.clock.Advance(time.Minute)
	}

	_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpResetPassword)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpRateLimited))
	assert.Equal(t, domainerrors.KindRateLimited, domainerrors.KindOf(err))
}

func TestOtpService_Issue_MissingSectionUsesDefaults(t *testing.T) {
	store := memory.NewStore()
	service := NewOtpService(OtpServiceParams{
		TxManager: store.TxManager(),
		OtpRepo:   store.Otps(),
		Clock:     newFakeClock(testNow),
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	for i := range 5 {
		code, err := service.Issue(ctx, "a@example.com", entity.OtpActivation)
		require.NoError(t, err, "issue %d", i+1)
		assert.Len(t, code, 6)
	}

	_, err := service.Issue(ctx, "a@example.com", entity.OtpActivation)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpRateLimited))
}

func TestOtpService_Issue_RateLimitSpansPurposesByDefault(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	purposes := []entity.OtpPurpose{entity.OtpActivation, entity.OtpResetPassword, entity.OtpChangeEmail, entity.OtpChangePhone, entity.OtpActivation}
	for _, purpose := range purposes {
		_, err := fx.service.Issue(ctx, "a@example.com", purpose)
		require.NoError(t, err)
	}

	_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpChangePhone)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpRateLimited))
}

func TestOtpService_Issue_PurposeScope(t *testing.T) {
	fx := createTestOtpService(t, func(cfg *config.Config) {
		cfg.Otp.Scope = config.OtpScopePurpose
	})
	ctx := context.Background()

	for range 5 {
		_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpChangeEmail)
		require.NoError(t, err)
	}

	_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpChangeEmail)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpRateLimited))

	_, err = fx.service.Issue(ctx, "a@example.com", entity.OtpChangePhone)
	assert.NoError(t, err)
}

func TestOtpService_Issue_WindowSlides(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	for range 5 {
		_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
		require.NoError(t, err)
	}

	fx.clock.Advance(time.Hour)

	_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	assert.NoError(t, err)
}

func TestOtpService_Issue_SupersedesPreviousCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	first, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.NoError(t, err)

	var second string
	for second == "" || second == first {
		second, err = fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
		require.NoError(t, err)
	}

	ok, err := fx.service.Verify(ctx, "a@example.com", first, entity.OtpActivation)
	require.NoError(t, err)
	assert.False(t, ok, "superseded code must not verify")

	ok, err = fx.service.Verify(ctx, "a@example.com", second, entity.OtpActivation)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOtpService_Issue_OtherPurposeStaysActive(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	activation, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.NoError(t, err)
	_, err = fx.service.Issue(ctx, "a@example.com", entity.OtpResetPassword)
	require.NoError(t, err)

	ok, err := fx.service.CheckValid(ctx, "a@example.com", activation, entity.OtpActivation)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOtpService_Verify_SingleUse(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "a@example.com", entity.OtpResetPassword)
	require.NoError(t, err)

	ok, err := fx.service.Verify(ctx, "a@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.Verify(ctx, "a@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOtpService_Verify_IdentifierCaseInsensitive(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "A@Example.com", entity.OtpActivation)
	require.NoError(t, err)

	ok, err := fx.service.Verify(ctx, " a@example.COM ", code, entity.OtpActivation)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOtpService_Verify_Expired(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.NoError(t, err)

	fx.clock.Advance(5 * time.Minute)

	ok, err := fx.service.Verify(ctx, "a@example.com", code, entity.OtpActivation)
	require.NoError(t, err)
	assert.False(t, ok, "a code expiring exactly now is no longer active")
}

func TestOtpService_Verify_WrongPurposeOrCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.NoError(t, err)

	ok, err := fx.service.Verify(ctx, "a@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fx.service.Verify(ctx, "a@example.com", "", entity.OtpActivation)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fx.service.Verify(ctx, "b@example.com", code, entity.OtpActivation)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOtpService_CheckValid_DoesNotConsume(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "a@example.com", entity.OtpResetPassword)
	require.NoError(t, err)

	for range 2 {
		ok, err := fx.service.CheckValid(ctx, "a@example.com", code, entity.OtpResetPassword)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := fx.service.Verify(ctx, "a@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOtpService_Delete(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	code, err := fx.service.Issue(ctx, "a@example.com", entity.OtpChangeEmail)
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, "a@example.com", entity.OtpChangeEmail))

	ok, err := fx.service.CheckValid(ctx, "a@example.com", code, entity.OtpChangeEmail)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOtpService_SweepExpired(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	_, err := fx.service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.NoError(t, err)
	fx.clock.Advance(10 * time.Minute)
	live, err := fx.service.Issue(ctx, "b@example.com", entity.OtpActivation)
	require.NoError(t, err)

	deleted, err := fx.service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	ok, err := fx.service.CheckValid(ctx, "b@example.com", live, entity.OtpActivation)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOtpService_Issue_InvalidInput(t *testing.T) {
	fx := createTestOtpService(t)

	_, err := fx.service.Issue(context.Background(), "  ", entity.OtpActivation)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Issue(context.Background(), "a@example.com", entity.OtpPurpose("LOGIN"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOtpService_Issue_StoreError(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	otpRepo := mockRepo.NewMockOtpRepository(t)

	service := NewOtpService(OtpServiceParams{
		TxManager: txManager,
		OtpRepo:   otpRepo,
		Clock:     newFakeClock(testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OtpRepo().Return(otpRepo)
		otpRepo.EXPECT().LockIdentifier(ctx, "a@example.com").Return(nil)
		otpRepo.EXPECT().
			CountRecentByIdentifier(ctx, "a@example.com", testNow.Add(-time.Hour)).
			Return(0, nil)
		otpRepo.EXPECT().
			InvalidateActive(ctx, "a@example.com", entity.OtpActivation, testNow).
			Return(0, nil)
		otpRepo.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.OtpRecord")).
			Return(errors.New("db down"))
	})

	code, err := service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.Error(t, err)
	assert.Empty(t, code)
	assert.Contains(t, err.Error(), "failed to save code")
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func newMockedOtpService(t *testing.T) (usecase.OtpUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOtpRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	otpRepo := mockRepo.NewMockOtpRepository(t)
	service := NewOtpService(OtpServiceParams{
		TxManager: txManager,
		OtpRepo:   otpRepo,
		Clock:     newFakeClock(testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return service, txManager, otpRepo
}

func TestOtpService_Issue_LocksIdentifierBeforeCounting(t *testing.T) {
	ctx := context.Background()
	service, txManager, otpRepo := newMockedOtpService(t)

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OtpRepo().Return(otpRepo)
		mock.InOrder(
			otpRepo.EXPECT().LockIdentifier(ctx, "a@example.com").Return(nil).Call,
			otpRepo.EXPECT().
				CountRecentByIdentifier(ctx, "a@example.com", testNow.Add(-time.Hour)).
				Return(4, nil).Call,
			otpRepo.EXPECT().
				InvalidateActive(ctx, "a@example.com", entity.OtpActivation, testNow).
				Return(1, nil).Call,
			otpRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.OtpRecord")).
				Return(nil).Call,
		)
	})

	code, err := service.Issue(ctx, "A@example.com", entity.OtpActivation)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestOtpService_Issue_LockFailure(t *testing.T) {
	ctx := context.Background()
	service, txManager, otpRepo := newMockedOtpService(t)

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OtpRepo().Return(otpRepo)
		otpRepo.EXPECT().LockIdentifier(ctx, "a@example.com").Return(errors.New("lock timeout"))
	})

	code, err := service.Issue(ctx, "a@example.com", entity.OtpActivation)
	require.Error(t, err)
	assert.Empty(t, code)
	assert.Contains(t, err.Error(), "failed to lock identifier")
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestOtpService_Verify_LostRace(t *testing.T) {
	ctx := context.Background()
	otpRepo := mockRepo.NewMockOtpRepository(t)

	service := NewOtpService(OtpServiceParams{
		OtpRepo: otpRepo,
		Clock:   newFakeClock(testNow),
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	record := &entity.OtpRecord{Identifier: "a@example.com", Code: "123456", Purpose: entity.OtpActivation}
	otpRepo.EXPECT().FindActive(ctx, "a@example.com", "123456", entity.OtpActivation, testNow).Return(record, nil)
	otpRepo.EXPECT().MarkUsed(ctx, record).Return(false, nil)

	ok, err := service.Verify(ctx, "a@example.com", "123456", entity.OtpActivation)
	require.NoError(t, err)
	assert.False(t, ok)
}
