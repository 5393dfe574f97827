package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the mobile OS a device registered from.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
)

// UserDevice is a push target for friend-request and acceptance notifications.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"` // client generated, stable per install
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
