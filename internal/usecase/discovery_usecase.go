package usecase

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoveryCriteria narrows a friend search. Every field is optional.
type DiscoveryCriteria struct {
	Query string
	// Presence filters by tier. Empty or ALL disables the filter.
	Presence entity.PresenceTier
	// Activity is compared case-insensitively with the raw reported tag.
	Activity string
	// MaxDistanceMeters is ignored unless caller coordinates are set.
	MaxDistanceMeters *float64
	Latitude          *float64
	Longitude         *float64
}

// HasOrigin reports whether both caller coordinates are present.
func (c *DiscoveryCriteria) HasOrigin() bool {
	return c != nil && c.Latitude != nil && c.Longitude != nil
}

// FriendSnapshot is a friend's identity joined with their latest position.
type FriendSnapshot struct {
	UserID         uuid.UUID           `json:"user_id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone,omitempty"`
	AvatarURL      string              `json:"avatar_url,omitempty"`
	Presence       entity.PresenceTier `json:"presence"`
	Activity       string              `json:"activity"`
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	DistanceMeters *float64            `json:"distance_meters,omitempty"`
	LastSeen       string              `json:"last_seen"`
	ObservedAt     time.Time           `json:"observed_at"`
}

// DiscoveryResult separates "no friends matched" from "the lookup failed".
// Degraded is true when the friend list could not be loaded; Friends is then empty.
type DiscoveryResult struct {
	Friends  []*FriendSnapshot `json:"friends"`
	Degraded bool              `json:"degraded"`
}

// HistoryPoint is one entry of a friend's recent trail.
type HistoryPoint struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Activity   string    `json:"activity"`
	ObservedAt time.Time `json:"observed_at"`
}

// FriendProfile is a snapshot plus recent history.
type FriendProfile struct {
	*FriendSnapshot
	History []HistoryPoint `json:"history"`
}

// DiscoveryUsecase answers "where are my friends".
type DiscoveryUsecase interface {
	// Search never fails on store errors; it reports them through DiscoveryResult.Degraded.
	Search(ctx context.Context, userID uuid.UUID, criteria *DiscoveryCriteria) (*DiscoveryResult, error)

	// Nearby lists friends ordered by distance from (lat, lon), truncated to limit.
	Nearby(ctx context.Context, userID uuid.UUID, lat, lon float64, limit int) (*DiscoveryResult, error)

	// Profile returns one friend's snapshot and recent history.
	Profile(ctx context.Context, userID, friendID uuid.UUID, lat, lon *float64) (*FriendProfile, error)
}
