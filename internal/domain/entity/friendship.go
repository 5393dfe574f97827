package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FriendStatus is the state of a friend edge.
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "PENDING"
	FriendStatusAccepted FriendStatus = "ACCEPTED"
	FriendStatusUnknown  FriendStatus = "UNKNOWN"
)

// ParseFriendStatus maps store values onto the closed set.
func ParseFriendStatus(s string) FriendStatus {
	switch status := FriendStatus(strings.ToUpper(s)); status {
	case FriendStatusPending, FriendStatusAccepted:
		return status
	default:
		return FriendStatusUnknown
	}
}

// Friendship is a directed edge from the requester (UserID) to the recipient (FriendID).
// At most one edge exists per unordered pair.
type Friendship struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FriendID  uuid.UUID
	Status    FriendStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Other returns the party of the edge that is not userID.
func (f *Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.UserID == userID {
		return f.FriendID
	}

	return f.UserID
}

// Involves reports whether userID is either end of the edge.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.UserID == userID || f.FriendID == userID
}
