package memory

import (
	"context"
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type checkInRepository struct {
	s *Store
}

func (r *checkInRepository) CountForPlace(_ context.Context, placeID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, c := range r.s.checkIns {
		if c.PlaceID == placeID {
			count++
		}
	}

	return count, nil
}

func (r *checkInRepository) CountForPlaces(_ context.Context, placeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(placeIDs))
	for _, id := range placeIDs {
		wanted[id] = struct{}{}
	}

	counts := make(map[uuid.UUID]int64, len(placeIDs))
	for _, c := range r.s.checkIns {
		if _, ok := wanted[c.PlaceID]; ok {
			counts[c.PlaceID]++
		}
	}

	return counts, nil
}

func (r *checkInRepository) FindTodayCheckIn(_ context.Context, placeID, userID uuid.UUID, day time.Time) (*entity.CheckIn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if c := r.find(placeID, userID, day); c != nil {
		return copyOf(c), nil
	}

	return nil, repository.ErrCheckInNotFound
}

// Save enforces the (place, user, day) key the way the unique index does.
func (r *checkInRepository) Save(_ context.Context, checkIn *entity.CheckIn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.places[checkIn.PlaceID]; !ok {
		return repository.ErrPlaceNotFound
	}
	if r.find(checkIn.PlaceID, checkIn.UserID, checkIn.Day) != nil {
		return repository.ErrDuplicateCheckIn
	}

	r.s.insert(&checkIn.ID)
	r.s.checkIns[checkIn.ID] = copyOf(checkIn)

	return nil
}

func (r *checkInRepository) find(placeID, userID uuid.UUID, day time.Time) *entity.CheckIn {
	for _, c := range r.s.checkIns {
		if c.PlaceID == placeID && c.UserID == userID && sameDate(c.Day, day) {
			return c
		}
	}

	return nil
}

// sameDate compares calendar dates as a DATE column would.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
