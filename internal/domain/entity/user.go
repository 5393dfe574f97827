// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Other records refer to it by ID only.
type User struct {
	ID           uuid.UUID // Global identifier.
	Name         string    // Display name.
	Email        string    // Unique login identifier.
	Phone        string    // Optional, unique when set.
	AvatarURL    string    // Optional avatar image.
	PasswordHash string    // bcrypt hash, never serialised.
	Activated    bool      // Set once the activation code has been verified.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contact returns the user's email, or phone when no email is set.
func (u *User) Contact() string {
	if u.Email != "" {
		return u.Email
	}

	return u.Phone
}
