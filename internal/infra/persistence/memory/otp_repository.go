package memory

import (
	"context"
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"
)

type otpRepository struct {
	s *Store
}

func (r *otpRepository) CountRecentByIdentifier(_ context.Context, identifier string, since time.Time) (int64, error) {
	return r.count(func(o *entity.OtpRecord) bool {
		return o.Identifier == identifier && o.CreatedAt.After(since)
	}), nil
}

func (r *otpRepository) CountRecentByIdentifierAndPurpose(_ context.Context, identifier string, purpose entity.OtpPurpose, since time.Time) (int64, error) {
	return r.count(func(o *entity.OtpRecord) bool {
		return o.Identifier == identifier && o.Purpose == purpose && o.CreatedAt.After(since)
	}), nil
}

func (r *otpRepository) InvalidateActive(_ context.Context, identifier string, purpose entity.OtpPurpose, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, o := range r.s.otps {
		if o.Identifier == identifier && o.Purpose == purpose && o.Active(now) {
			o.Used = true
			n++
		}
	}

	return n, nil
}

// FindActive returns the newest live match.
func (r *otpRepository) FindActive(_ context.Context, identifier, code string, purpose entity.OtpPurpose, now time.Time) (*entity.OtpRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *entity.OtpRecord
	for _, o := range r.s.otps {
		if o.Identifier != identifier || o.Code != code || o.Purpose != purpose || !o.Active(now) {
			continue
		}
		if found == nil || r.s.before(found.ID, o.ID) {
			found = o
		}
	}
	if found == nil {
		return nil, repository.ErrOtpNotFound
	}

	return copyOf(found), nil
}

func (r *otpRepository) MarkUsed(_ context.Context, record *entity.OtpRecord) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.otps[record.ID]
	if !ok || o.Used {
		return false, nil
	}
	o.Used = true
	record.Used = true

	return true, nil
}

func (r *otpRepository) Save(_ context.Context, record *entity.OtpRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.insert(&record.ID)
	r.s.otps[record.ID] = copyOf(record)

	return nil
}

func (r *otpRepository) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	return r.delete(func(o *entity.OtpRecord) bool { return o.ExpiresAt.Before(before) }), nil
}

func (r *otpRepository) DeleteByIdentifierAndPurpose(_ context.Context, identifier string, purpose entity.OtpPurpose) error {
	r.delete(func(o *entity.OtpRecord) bool { return o.Identifier == identifier && o.Purpose == purpose })

	return nil
}

func (r *otpRepository) count(match func(*entity.OtpRecord) bool) int64 {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, o := range r.s.otps {
		if match(o) {
			n++
		}
	}

	return n
}

func (r *otpRepository) delete(match func(*entity.OtpRecord) bool) int64 {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, o := range r.s.otps {
		if match(o) {
			delete(r.s.otps, id)
			delete(r.s.order, id)
			n++
		}
	}

	return n
}

// LockIdentifier is a no-op: the memory TxManager already runs one transaction at a time.
func (r *otpRepository) LockIdentifier(context.Context, string) error {
	return nil
}
