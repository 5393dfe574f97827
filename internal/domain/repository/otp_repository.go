package repository

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOtpNotFound is returned when no active record matches.
var ErrOtpNotFound = errors.New("otp not found")

// OtpRepository stores one-time codes.
type OtpRepository interface {
	// CountRecentByIdentifier counts records for identifier created after since, any purpose.
	CountRecentByIdentifier(ctx context.Context, identifier string, since time.Time) (int64, error)

	// CountRecentByIdentifierAndPurpose counts records for (identifier, purpose) created after since.
	CountRecentByIdentifierAndPurpose(ctx context.Context, identifier string, purpose entity.OtpPurpose, since time.Time) (int64, error)

	// InvalidateActive marks every unused, unexpired record for (identifier, purpose) as used.
	InvalidateActive(ctx context.Context, identifier string, purpose entity.OtpPurpose, now time.Time) (int64, error)

	// FindActive returns the unused record matching code that expires after now.
	FindActive(ctx context.Context, identifier, code string, purpose entity.OtpPurpose, now time.Time) (*entity.OtpRecord, error)

	// MarkUsed flips the used flag. It reports false when the record was already used,
	// so two concurrent verifications cannot both succeed.
	MarkUsed(ctx context.Context, record *entity.OtpRecord) (bool, error)

	// Save inserts a record.
	Save(ctx context.Context, record *entity.OtpRecord) error

	// DeleteExpired removes records that expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	// DeleteByIdentifierAndPurpose removes all records for (identifier, purpose).
	DeleteByIdentifierAndPurpose(ctx context.Context, identifier string, purpose entity.OtpPurpose) error

	// LockIdentifier blocks other issuers for identifier until the surrounding
	// transaction ends. It must run inside TransactionManager.Execute.
	LockIdentifier(ctx context.Context, identifier string) error
}
