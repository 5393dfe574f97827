package usecase

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendRequest is an incoming pending request with the requester's identity.
type FriendRequest struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FriendUsecase mutates the friend graph.
type FriendUsecase interface {
	// AddFriend sends a request to the user owning email.
	AddFriend(ctx context.Context, userID uuid.UUID, email string) (*entity.Friendship, error)

	// AddFriendFromInvite decodes an invite QR payload and sends a request to its owner.
	AddFriendFromInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Friendship, error)

	// AcceptFriend may only be called by the request recipient.
	AcceptFriend(ctx context.Context, userID, friendshipID uuid.UUID) (*entity.Friendship, error)

	// RemoveFriend deletes the edge between the two users in either direction.
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	PendingRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequest, error)

	// InviteQR renders the caller's invite as a PNG.
	InviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
