package impl

import (
	"context"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
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

type friendServiceFixtures struct {
	service    usecase.FriendUsecase
	store      *memory.Store
	dispatcher *mockService.MockDispatcher
	qrCode     *mockService.MockQRCodeService
	alice      *entity.User
	bob        *entity.User
}

func createTestFriendService(t *testing.T) friendServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	dispatcher := mockService.NewMockDispatcher(t)
	qrCode := mockService.NewMockQRCodeService(t)

	service := NewFriendService(FriendServiceParams{
		TxManager:      store.TxManager(),
		FriendshipRepo: store.Friendships(),
		UserRepo:       store.Users(),
		QRCodeService:  qrCode,
		Dispatcher:     dispatcher,
		Logger:         newDiscardLogger(),
	})

	return friendServiceFixtures{
		service:    service,
		store:      store,
		dispatcher: dispatcher,
		qrCode:     qrCode,
		alice:      seedUser(t, store, "Alice", "alice@example.com"),
		bob:        seedUser(t, store, "Bob", "bob@example.com"),
	}
}

func pushTo(userID uuid.UUID, kind string) interface{} {
	return mock.MatchedBy(func(event *service.DispatchEvent) bool {
		return event.Channel == service.ChannelPush &&
			event.Destination == userID.String() &&
			event.Data["type"] == kind
	})
}

func TestFriendService_AddFriend(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	fx.dispatcher.EXPECT().Send(ctx, pushTo(fx.bob.ID, "friend_request")).Return(nil).Once()

	edge, err := fx.service.AddFriend(ctx, fx.alice.ID, " Bob@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, fx.alice.ID, edge.UserID)
	assert.Equal(t, fx.bob.ID, edge.FriendID)
	assert.Equal(t, entity.FriendStatusPending, edge.Status)

	stored, err := fx.store.Friendships().FindPair(ctx, fx.bob.ID, fx.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, edge.ID, stored.ID)
}

func TestFriendService_AddFriend_Rejections(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	_, err := fx.service.AddFriend(ctx, fx.alice.ID, "alice@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrSelfFriendship))

	_, err = fx.service.AddFriend(ctx, fx.alice.ID, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = fx.service.AddFriend(ctx, fx.alice.ID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFriendService_AddFriend_ExistingPair(t *testing.T) {
	tests := []struct {
		name    string
		forward bool
		status  entity.FriendStatus
	}{
		{name: "accepted, same direction", forward: true, status: entity.FriendStatusAccepted},
		{name: "pending, same direction", forward: true, status: entity.FriendStatusPending},
		{name: "pending, reverse direction", forward: false, status: entity.FriendStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFriendService(t)
			ctx := context.Background()

			if tt.forward {
				seedFriendship(t, fx.store, fx.alice.ID, fx.bob.ID, tt.status)
			} else {
				seedFriendship(t, fx.store, fx.bob.ID, fx.alice.ID, tt.status)
			}

			_, err := fx.service.AddFriend(ctx, fx.alice.ID, "bob@example.com")
			assert.True(t, errors.Is(err, domainerrors.ErrFriendshipExists))
		})
	}
}

func TestFriendService_AddFriend_DispatchFailureIgnored(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	fx.dispatcher.EXPECT().Send(ctx, mock.Anything).Return(errors.New("bus down")).Once()

	_, err := fx.service.AddFriend(ctx, fx.alice.ID, "bob@example.com")
	assert.NoError(t, err)
}

func TestFriendService_AddFriendFromInvite(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	fx.qrCode.EXPECT().ParseInvite("mapic://add-friend?email=bob@example.com").Return("bob@example.com", nil)
	fx.dispatcher.EXPECT().Send(ctx, pushTo(fx.bob.ID, "friend_request")).Return(nil).Once()

	edge, err := fx.service.AddFriendFromInvite(ctx, fx.alice.ID, "mapic://add-friend?email=bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, fx.bob.ID, edge.FriendID)

	fx.qrCode.EXPECT().ParseInvite("garbage").Return("", errors.New("not an invite"))
	_, err = fx.service.AddFriendFromInvite(ctx, fx.alice.ID, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFriendService_AcceptFriend(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	edge := seedFriendship(t, fx.store, fx.alice.ID, fx.bob.ID, entity.FriendStatusPending)

	_, err := fx.service.AcceptFriend(ctx, fx.alice.ID, edge.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRequestRecipient))

	fx.dispatcher.EXPECT().Send(ctx, pushTo(fx.alice.ID, "friend_accepted")).Return(nil).Once()

	accepted, err := fx.service.AcceptFriend(ctx, fx.bob.ID, edge.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FriendStatusAccepted, accepted.Status)

	stored, err := fx.store.Friendships().FindByID(ctx, edge.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FriendStatusAccepted, stored.Status)

	_, err = fx.service.AcceptFriend(ctx, fx.bob.ID, edge.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestHandled))

	_, err = fx.service.AcceptFriend(ctx, fx.bob.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrFriendshipNotFound))
}

func TestFriendService_RemoveFriend(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	seedFriendship(t, fx.store, fx.alice.ID, fx.bob.ID, entity.FriendStatusAccepted)

	require.NoError(t, fx.service.RemoveFriend(ctx, fx.bob.ID, fx.alice.ID))

	err := fx.service.RemoveFriend(ctx, fx.alice.ID, fx.bob.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendshipNotFound))
}

func TestFriendService_PendingRequests(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	carol := seedUser(t, fx.store, "Carol", "carol@example.com")
	first := seedFriendship(t, fx.store, fx.alice.ID, fx.bob.ID, entity.FriendStatusPending)
	seedFriendship(t, fx.store, carol.ID, fx.bob.ID, entity.FriendStatusPending)
	dave := seedUser(t, fx.store, "Dave", "dave@example.com")
	seedFriendship(t, fx.store, dave.ID, fx.bob.ID, entity.FriendStatusAccepted)

	requests, err := fx.service.PendingRequests(ctx, fx.bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, first.ID, requests[0].ID)
	assert.Equal(t, "Alice", requests[0].Name)
	assert.Equal(t, "alice@example.com", requests[0].Email)
	assert.Equal(t, "Carol", requests[1].Name)

	none, err := fx.service.PendingRequests(ctx, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFriendService_InviteQR(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrCode.EXPECT().GenerateInviteQR(fx.alice.ID, "alice@example.com").Return(png, nil)

	got, err := fx.service.InviteQR(ctx, fx.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = fx.service.InviteQR(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestFriendService_AddFriend_StoreError(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	userID := uuid.New()

	service := NewFriendService(FriendServiceParams{
		TxManager:      txManager,
		FriendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		UserRepo:       mockRepo.NewMockUserRepository(t),
		QRCodeService:  mockService.NewMockQRCodeService(t),
		Dispatcher:     mockService.NewMockDispatcher(t),
		Logger:         newDiscardLogger(),
	})

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().FriendshipRepo().Return(mockRepo.NewMockFriendshipRepository(t))
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))
	})

	_, err := service.AddFriend(ctx, userID, "bob@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find requester")
}
