// Package usecase declares the application's business operations.
package usecase

import (
	"context"

	"mapic/internal/domain/entity"
)

// OtpUsecase manages one-time codes per (identifier, purpose).
// At most one code is active for a pair; issuing a new one supersedes the old.
type OtpUsecase interface {
	// Issue creates a new code and returns it. Delivery is the caller's job.
	Issue(ctx context.Context, identifier string, purpose entity.OtpPurpose) (string, error)

	// Verify consumes a matching active code. A consumed, expired or unknown code yields false.
	Verify(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error)

	// CheckValid reports whether a matching active code exists without consuming it.
	CheckValid(ctx context.Context, identifier, code string, purpose entity.OtpPurpose) (bool, error)

	// Delete removes every code for the pair.
	Delete(ctx context.Context, identifier string, purpose entity.OtpPurpose) error

	// SweepExpired deletes codes past their expiry and returns how many were removed.
	SweepExpired(ctx context.Context) (int64, error)
}
