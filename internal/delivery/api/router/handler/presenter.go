package handler

import (
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		Activated: u.Activated,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse is returned by login.
type LoginResponse struct {
	User   *UserResponse      `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// LocationResponse is one location sample.
type LocationResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Speed      *float64           `json:"speed,omitempty"`
	Heading    *float64           `json:"heading,omitempty"`
	Accuracy   *float64           `json:"accuracy,omitempty"`
	Activity   string             `json:"activity"`
	Tag        entity.ActivityTag `json:"activity_tag"`
	ObservedAt time.Time          `json:"observed_at"`
	RecordedAt time.Time          `json:"recorded_at"`
}

func toLocationResponse(s *entity.LocationSample) *LocationResponse {
	if s == nil {
		return nil
	}

	return &LocationResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Speed:      s.Speed,
		Heading:    s.Heading,
		Accuracy:   s.Accuracy,
		Activity:   s.Activity,
		Tag:        s.Tag(),
		ObservedAt: s.ObservedAt,
		RecordedAt: s.RecordedAt,
	}
}

func toLocationResponses(samples []*entity.LocationSample) []*LocationResponse {
	out := make([]*LocationResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, toLocationResponse(s))
	}

	return out
}

// FriendLocationResponse is a friend's identity with their latest sample.
type FriendLocationResponse struct {
	UserID    uuid.UUID         `json:"user_id"`
	Name      string            `json:"name"`
	AvatarURL string            `json:"avatar_url,omitempty"`
	Location  *LocationResponse `json:"location"`
}

func toFriendLocationResponses(in []*usecase.FriendLocation) []*FriendLocationResponse {
	out := make([]*FriendLocationResponse, 0, len(in))
	for _, fl := range in {
		out = append(out, &FriendLocationResponse{
			UserID:    fl.UserID,
			Name:      fl.Name,
			AvatarURL: fl.AvatarURL,
			Location:  toLocationResponse(fl.Location),
		})
	}

	return out
}

// FriendshipResponse is a friend edge.
type FriendshipResponse struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	FriendID  uuid.UUID           `json:"friend_id"`
	Status    entity.FriendStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func toFriendshipResponse(f *entity.Friendship) *FriendshipResponse {
	return &FriendshipResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		FriendID:  f.FriendID,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// CheckInResponse is a recorded visit.
type CheckInResponse struct {
	ID          uuid.UUID `json:"id"`
	PlaceID     uuid.UUID `json:"place_id"`
	UserID      uuid.UUID `json:"user_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
	Day         string    `json:"day"`
}

func toCheckInResponse(ci *entity.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:          ci.ID,
		PlaceID:     ci.PlaceID,
		UserID:      ci.UserID,
		CheckedInAt: ci.CheckedInAt,
		Day:         ci.Day.Format(time.DateOnly),
	}
}
