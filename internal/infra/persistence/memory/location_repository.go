package memory

import (
	"context"
	"sort"
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type locationRepository struct {
	s *Store
}

func (r *locationRepository) Save(_ context.Context, sample *entity.LocationSample) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[sample.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	r.s.insert(&sample.ID)
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = r.s.now()
	}
	r.s.locations[sample.ID] = copyOf(sample)

	return nil
}

func (r *locationRepository) LatestFor(_ context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	latest := r.latest(userID)
	if latest == nil {
		return nil, repository.ErrLocationNotFound
	}

	return copyOf(latest), nil
}

func (r *locationRepository) HistorySince(_ context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error) {
	return r.history(userID, func(t time.Time) bool { return !t.Before(since) }), nil
}

func (r *locationRepository) HistoryBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error) {
	return r.history(userID, func(t time.Time) bool { return !t.Before(from) && !t.After(to) }), nil
}

func (r *locationRepository) LatestForMany(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.LocationSample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	latest := make(map[uuid.UUID]*entity.LocationSample, len(userIDs))
	for _, userID := range userIDs {
		if sample := r.latest(userID); sample != nil {
			latest[userID] = copyOf(sample)
		}
	}

	return latest, nil
}

func (r *locationRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var removed int64
	for id, sample := range r.s.locations {
		if sample.ObservedAt.Before(cutoff) {
			delete(r.s.locations, id)
			delete(r.s.order, id)
			removed++
		}
	}

	return removed, nil
}

// latest expects the caller to hold the lock.
func (r *locationRepository) latest(userID uuid.UUID) *entity.LocationSample {
	var latest *entity.LocationSample
	for _, sample := range r.s.locations {
		if sample.UserID != userID {
			continue
		}
		if latest == nil || sample.ObservedAt.After(latest.ObservedAt) {
			latest = sample
		}
	}

	return latest
}

func (r *locationRepository) history(userID uuid.UUID, keep func(time.Time) bool) []*entity.LocationSample {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	samples := make([]*entity.LocationSample, 0)
	for _, sample := range r.s.locations {
		if sample.UserID == userID && keep(sample.ObservedAt) {
			samples = append(samples, copyOf(sample))
		}
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].ObservedAt.Before(samples[j].ObservedAt) })

	return samples
}
