package impl

import (
	"context"
	"strings"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/infra/persistence/memory"
	mockRepo "mapic/internal/mocks/repository"
	mockService "mapic/internal/mocks/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// outbox records every dispatched message.
type outbox struct {
	events []*service.DispatchEvent
}

// lastCode returns the code of the latest message sent to destination.
func (o *outbox) lastCode(destination string) string {
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Destination == destination {
			return strings.TrimPrefix(o.events[i].Body, "Your verification code is ")
		}
	}

	return ""
}

func newRecordingDispatcher(t *testing.T) (*mockService.MockDispatcher, *outbox) {
	box := &outbox{}
	dispatcher := mockService.NewMockDispatcher(t)
	dispatcher.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.DispatchEvent) error {
			box.events = append(box.events, event)

			return nil
		}).
		Maybe()

	return dispatcher, box
}

func newPrefixHasher(t *testing.T) *mockService.MockPasswordHasher {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().
		Hash(mock.Anything).
		RunAndReturn(func(password string) (string, error) { return "hashed:" + password, nil }).
		Maybe()
	hasher.EXPECT().
		Check(mock.Anything, mock.Anything).
		RunAndReturn(func(password, hash string) bool { return hash == "hashed:"+password }).
		Maybe()

	return hasher
}

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	store        *memory.Store
	clock        *fakeClock
	tokenService *mockService.MockTokenService
	outbox       *outbox
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	clock := newFakeClock(testNow)
	cfg := newTestConfig()
	dispatcher, box := newRecordingDispatcher(t)
	tokenService := mockService.NewMockTokenService(t)

	otp := NewOtpService(OtpServiceParams{
		TxManager: store.TxManager(),
		OtpRepo:   store.Otps(),
		Clock:     clock,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	service := NewAuthService(AuthServiceParams{
		UserRepo:     store.Users(),
		Otp:          otp,
		Hasher:       newPrefixHasher(t),
		TokenService: tokenService,
		Dispatcher:   dispatcher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		store:        store,
		clock:        clock,
		tokenService: tokenService,
		outbox:       box,
	}
}

func (fx authServiceFixtures) register(t *testing.T, email string) *entity.User {
	t.Helper()

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)

	return user
}

func TestAuthService_RegisterAndActivate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := fx.register(t, "New@Example.com")
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.Activated)
	assert.Equal(t, "hashed:secret1", user.PasswordHash)

	require.Len(t, fx.outbox.events, 1)
	assert.Equal(t, service.ChannelEmail, fx.outbox.events[0].Channel)
	code := fx.outbox.lastCode("new@example.com")
	require.Len(t, code, 6)

	_, err := fx.service.Login(ctx, "new@example.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotActivated))

	err = fx.service.Activate(ctx, "new@example.com", "000000x")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))

	require.NoError(t, fx.service.Activate(ctx, "new@example.com", code))

	err = fx.service.Activate(ctx, "new@example.com", code)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyActivated))

	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return(tokens, nil)

	out, err := fx.service.Login(ctx, "NEW@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, tokens, out.Tokens)
}

func TestAuthService_Register_Rejections(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := fx.register(t, "taken@example.com")
	existing.Phone = "+84900000000"
	require.NoError(t, fx.store.Users().Update(ctx, existing))

	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		wantErr error
	}{
		{"short password", &usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}, domainerrors.ErrPasswordTooShort},
		{"missing email", &usecase.RegisterInput{Name: "A", Password: "123456"}, domainerrors.ErrValidationFailed},
		{"email in use", &usecase.RegisterInput{Name: "A", Email: "TAKEN@example.com", Password: "123456"}, domainerrors.ErrEmailInUse},
		{"phone in use", &usecase.RegisterInput{Name: "A", Email: "a@example.com", Phone: "+84900000000", Password: "123456"}, domainerrors.ErrPhoneInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAuthService_Register_LostUniqueRace(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := mockService.NewMockDispatcher(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Otp:          nil,
		Hasher:       newPrefixHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Dispatcher:   dispatcher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	userRepo.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, &usecase.RegisterInput{Name: "R", Email: "race@example.com", Password: "123456"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAuthService_ResendActivation(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.register(t, "resend@example.com")
	first := fx.outbox.lastCode("resend@example.com")

	require.NoError(t, fx.service.ResendActivation(ctx, "resend@example.com"))
	second := fx.outbox.lastCode("resend@example.com")
	require.Len(t, fx.outbox.events, 2)

	if first != second {
		err := fx.service.Activate(ctx, "resend@example.com", first)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))
	}
	require.NoError(t, fx.service.Activate(ctx, "resend@example.com", second))

	err := fx.service.ResendActivation(ctx, "resend@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyActivated))

	err = fx.service.ResendActivation(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.register(t, "login@example.com")

	_, err := fx.service.Login(ctx, "login@example.com", "wrong-password")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fx.service.Login(ctx, "nobody@example.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ForgotAndResetPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := fx.register(t, "reset@example.com")

	require.NoError(t, fx.service.ForgotPassword(ctx, "reset@example.com"))
	code := fx.outbox.lastCode("reset@example.com")

	ok, err := fx.service.VerifyOtp(ctx, "reset@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.VerifyOtp(ctx, "reset@example.com", code, entity.OtpResetPassword)
	require.NoError(t, err)
	assert.True(t, ok, "checking must not consume the code")

	err = fx.service.ResetPassword(ctx, "reset@example.com", code, "123")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))

	require.NoError(t, fx.service.ResetPassword(ctx, "reset@example.com", code, "brand-new"))

	stored, err := fx.store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:brand-new", stored.PasswordHash)

	err = fx.service.ResetPassword(ctx, "reset@example.com", code, "another-one")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))

	err = fx.service.ForgotPassword(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = fx.service.VerifyOtp(ctx, "reset@example.com", code, entity.OtpPurpose("LOGIN"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_ForgotPassword_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.register(t, "limit@example.com")
	for i := 0; i < 4; i++ {
		require.NoError(t, fx.service.ForgotPassword(ctx, "limit@example.com"))
	}

	err := fx.service.ForgotPassword(ctx, "limit@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrOtpRateLimited))
}

func TestAuthService_Refresh(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := seedUser(t, fx.store, "Refresher", "refresh@example.com")
	pair := &service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}

	claims := &service.Claims{Type: service.TokenTypeRefresh}
	claims.Subject = user.ID.String()
	fx.tokenService.EXPECT().ValidateToken("good", service.TokenTypeRefresh).Return(claims, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return(pair, nil)

	got, err := fx.service.Refresh(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	fx.tokenService.EXPECT().ValidateToken("expired", service.TokenTypeRefresh).Return(nil, errors.New("token is expired"))
	_, err = fx.service.Refresh(ctx, "expired")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	orphan := &service.Claims{Type: service.TokenTypeRefresh}
	orphan.Subject = uuid.New().String()
	fx.tokenService.EXPECT().ValidateToken("orphan", service.TokenTypeRefresh).Return(orphan, nil)
	_, err = fx.service.Refresh(ctx, "orphan")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
