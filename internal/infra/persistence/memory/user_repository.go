package memory

import (
	"context"
	"sort"
	"strings"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(user); err != nil {
		return err
	}

	r.s.insert(&user.ID)
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = copyOf(user)

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return err
	}

	updated := copyOf(user)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.s.now()
	r.s.users[user.ID] = updated
	user.UpdatedAt = updated.UpdatedAt

	return nil
}

// checkUnique mirrors the case-insensitive email index and the partial phone index.
func (r *userRepository) checkUnique(user *entity.User) error {
	for id, other := range r.s.users {
		if id == user.ID {
			continue
		}
		if strings.EqualFold(other.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
		if user.Phone != "" && other.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
	}

	return nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyOf(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)

	return r.findFirst(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, repository.ErrUserNotFound
	}

	return r.findFirst(func(u *entity.User) bool { return u.Phone == phone })
}

func (r *userRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.s.users[id]; ok {
			users = append(users, copyOf(user))
		}
	}

	return users, nil
}

func (r *userRepository) findFirst(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found []*entity.User
	for _, user := range r.s.users {
		if match(user) {
			found = append(found, user)
		}
	}
	if len(found) == 0 {
		return nil, repository.ErrUserNotFound
	}
	sort.Slice(found, func(i, j int) bool { return r.s.before(found[i].ID, found[j].ID) })

	return copyOf(found[0]), nil
}
