package repository

import (
	"context"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when no edge matches.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when an edge already exists for the unordered pair.
	ErrDuplicateFriendship = errors.New("friendship already exists")
)

// FriendshipRepository stores friend edges. One edge per unordered pair.
type FriendshipRepository interface {
	// FindAccepted returns ACCEPTED edges where userID is either end, oldest first.
	FindAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindPendingFor returns PENDING edges where userID is the recipient.
	FindPendingFor(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindPair returns the edge between the two users in either direction.
	FindPair(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error)

	// FindByID retrieves an edge by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error)

	// Save inserts a new edge. A second edge for the same pair fails with ErrDuplicateFriendship.
	Save(ctx context.Context, friendship *entity.Friendship) error

	// UpdateStatus changes the status of an edge.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendStatus) error

	// Delete removes an edge.
	Delete(ctx context.Context, id uuid.UUID) error
}
