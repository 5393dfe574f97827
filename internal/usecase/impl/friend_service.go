package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Push data types understood by the mobile client.
const (
	pushTypeFriendRequest  = "friend_request"
	pushTypeFriendAccepted = "friend_accepted"
)

type friendService struct {
	txManager      repository.TransactionManager
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	qrCodeService  service.QRCodeService
	dispatcher     service.Dispatcher
	logger         *slog.Logger
}

// FriendServiceParams holds dependencies for FriendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	QRCodeService  service.QRCodeService
	Dispatcher     service.Dispatcher
	Logger         *slog.Logger
}

// NewFriendService creates a new friend service instance
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		txManager:      params.TxManager,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		qrCodeService:  params.QRCodeService,
		dispatcher:     params.Dispatcher,
		logger:         params.Logger,
	}
}

func (s *friendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddFriend sends a friend request to the owner of email
func (s *friendService) AddFriend(ctx context.Context, userID uuid.UUID, email string) (*entity.Friendship, error) {
	email = normalizeIdentifier(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	var (
		edge      *entity.Friendship
		requester *entity.User
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()
		friendshipRepo := factory.FriendshipRepo()

		var err error
		requester, err = userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("requester not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find requester")
		}

		recipient, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no user with this email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find recipient")
		}
		if recipient.ID == userID {
			return domainerrors.ErrSelfFriendship
		}

		_, err = friendshipRepo.FindPair(ctx, userID, recipient.ID)
		if err == nil {
			return domainerrors.ErrFriendshipExists
		}
		if !errors.Is(err, repository.ErrFriendshipNotFound) {
			return errors.Wrap(err, "failed to check existing friendship")
		}

		edge = &entity.Friendship{
			UserID:   userID,
			FriendID: recipient.ID,
			Status:   entity.FriendStatusPending,
		}
		if err := friendshipRepo.Save(ctx, edge); err != nil {
			if errors.Is(err, repository.ErrDuplicateFriendship) {
				return domainerrors.ErrFriendshipExists
			}

			return errors.Wrap(err, "failed to save friendship")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Friend request sent",
		slog.String("user_id", userID.String()),
		slog.String("friend_id", edge.FriendID.String()),
	)

	s.push(ctx, edge.FriendID, "New friend request", requester.Name+" wants to be your friend", pushTypeFriendRequest, edge.ID)

	return edge, nil
}

// AddFriendFromInvite resolves a scanned invite and sends a request to its owner
func (s *friendService) AddFriendFromInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Friendship, error) {
	email, err := s.qrCodeService.ParseInvite(strings.TrimSpace(qrData))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid invite code")
	}

	return s.AddFriend(ctx, userID, email)
}

// AcceptFriend marks a pending request as accepted
func (s *friendService) AcceptFriend(ctx context.Context, userID, friendshipID uuid.UUID) (*entity.Friendship, error) {
	var (
		edge      *entity.Friendship
		recipient *entity.User
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		friendshipRepo := factory.FriendshipRepo()

		var err error
		edge, err = friendshipRepo.FindByID(ctx, friendshipID)
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrFriendshipNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find friendship")
		}
		if edge.FriendID != userID {
			return domainerrors.ErrNotRequestRecipient
		}
		if edge.Status != entity.FriendStatusPending {
			return domainerrors.ErrFriendRequestHandled
		}

		if err := friendshipRepo.UpdateStatus(ctx, edge.ID, entity.FriendStatusAccepted); err != nil {
			return errors.Wrap(err, "failed to accept friendship")
		}
		edge.Status = entity.FriendStatusAccepted

		recipient, err = factory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find recipient")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.push(ctx, edge.UserID, "Friend request accepted", recipient.Name+" accepted your friend request", pushTypeFriendAccepted, edge.ID)

	return edge, nil
}

// RemoveFriend deletes the edge between userID and friendID
func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	edge, err := s.friendshipRepo.FindPair(ctx, userID, friendID)
	if errors.Is(err, repository.ErrFriendshipNotFound) {
		return domainerrors.ErrFriendshipNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find friendship")
	}

	if err := s.friendshipRepo.Delete(ctx, edge.ID); err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrFriendshipNotFound
		}

		return errors.Wrap(err, "failed to delete friendship")
	}

	return nil
}

// PendingRequests lists requests waiting for userID to accept, oldest first
func (s *friendService) PendingRequests(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendRequest, error) {
	edges, err := s.friendshipRepo.FindPendingFor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending requests")
	}
	if len(edges) == 0 {
		return []*usecase.FriendRequest{}, nil
	}

	ids := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.UserID)
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requesters")
	}
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	requests := make([]*usecase.FriendRequest, 0, len(edges))
	for _, edge := range edges {
		requester, ok := byID[edge.UserID]
		if !ok {
			continue
		}
		requests = append(requests, &usecase.FriendRequest{
			ID:          edge.ID,
			RequesterID: requester.ID,
			Name:        requester.Name,
			Email:       requester.Email,
			AvatarURL:   requester.AvatarURL,
			CreatedAt:   edge.CreatedAt,
		})
	}

	return requests, nil
}

// InviteQR renders the caller's add-friend invite
func (s *friendService) InviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	png, err := s.qrCodeService.GenerateInviteQR(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return png, nil
}

func (s *friendService) push(ctx context.Context, to uuid.UUID, title, body, kind string, friendshipID uuid.UUID) {
	event := &service.DispatchEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Channel:     service.ChannelPush,
		Destination: to.String(),
		Subject:     title,
		Body:        body,
		Data: map[string]string{
			"type":          kind,
			"friendship_id": friendshipID.String(),
		},
	}

	if err := s.dispatcher.Send(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to dispatch push notification",
			slog.String("type", kind),
			slog.String("user_id", to.String()),
			slog.Any("error", err),
		)
	}
}
