package memory

import (
	"context"
	"sort"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type friendshipRepository struct {
	s *Store
}

func (r *friendshipRepository) FindAccepted(_ context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return r.filter(func(f *entity.Friendship) bool {
		return f.Status == entity.FriendStatusAccepted && f.Involves(userID)
	}), nil
}

func (r *friendshipRepository) FindPendingFor(_ context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return r.filter(func(f *entity.Friendship) bool {
		return f.Status == entity.FriendStatusPending && f.FriendID == userID
	}), nil
}

func (r *friendshipRepository) FindPair(_ context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if f := r.pair(userID, otherID); f != nil {
		return copyOf(f), nil
	}

	return nil, repository.ErrFriendshipNotFound
}

func (r *friendshipRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Friendship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.friendships[id]
	if !ok {
		return nil, repository.ErrFriendshipNotFound
	}

	return copyOf(f), nil
}

func (r *friendshipRepository) Save(_ context.Context, friendship *entity.Friendship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if friendship.UserID == friendship.FriendID {
		return domainerrors.ErrSelfFriendship
	}
	if r.pair(friendship.UserID, friendship.FriendID) != nil {
		return repository.ErrDuplicateFriendship
	}
	for _, id := range []uuid.UUID{friendship.UserID, friendship.FriendID} {
		if _, ok := r.s.users[id]; !ok {
			return repository.ErrUserNotFound
		}
	}

	r.s.insert(&friendship.ID)
	now := r.s.now()
	friendship.CreatedAt, friendship.UpdatedAt = now, now
	r.s.friendships[friendship.ID] = copyOf(friendship)

	return nil
}

func (r *friendshipRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.FriendStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.friendships[id]
	if !ok {
		return repository.ErrFriendshipNotFound
	}
	f.Status = status
	f.UpdatedAt = r.s.now()

	return nil
}

func (r *friendshipRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.friendships[id]; !ok {
		return repository.ErrFriendshipNotFound
	}
	delete(r.s.friendships, id)
	delete(r.s.order, id)

	return nil
}

// pair expects the caller to hold the lock.
func (r *friendshipRepository) pair(a, b uuid.UUID) *entity.Friendship {
	for _, f := range r.s.friendships {
		if (f.UserID == a && f.FriendID == b) || (f.UserID == b && f.FriendID == a) {
			return f
		}
	}

	return nil
}

// filter returns matches oldest first, like the SQL store.
func (r *friendshipRepository) filter(keep func(*entity.Friendship) bool) []*entity.Friendship {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Friendship, 0)
	for _, f := range r.s.friendships {
		if keep(f) {
			out = append(out, copyOf(f))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.s.before(out[i].ID, out[j].ID)
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}
