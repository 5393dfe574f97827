// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is taken by another user.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicatePhone is returned when the phone number is taken by another user.
	ErrDuplicatePhone = errors.New("phone already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. ID and timestamps are filled in on success.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every mutable field of user.
	Update(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a user by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByIDs retrieves users in one round trip. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
}
