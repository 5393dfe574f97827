package memory

import (
	"context"
	"sort"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	s *Store
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.UserDevice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[device.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, d := range r.s.devices {
		if d.UserID == device.UserID && d.DeviceID == device.DeviceID {
			return repository.ErrDuplicateDevice
		}
	}

	r.s.insert(&device.ID)
	now := r.s.now()
	device.CreatedAt, device.UpdatedAt = now, now
	r.s.devices[device.ID] = copyOf(device)

	return nil
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return copyOf(d), nil
}

func (r *deviceRepository) FindByUserAndDeviceID(_ context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.devices {
		if d.UserID == userID && d.DeviceID == deviceID {
			return copyOf(d), nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

// FindActiveDevicesByUser returns newest registrations first.
func (r *deviceRepository) FindActiveDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.UserDevice, 0)
	for _, d := range r.s.devices {
		if d.UserID == userID && d.IsActive {
			out = append(out, copyOf(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.before(out[j].ID, out[i].ID) })

	return out, nil
}

func (r *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.devices[deviceID]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	d.FCMToken = fcmToken
	d.IsActive = true
	d.UpdatedAt = r.s.now()

	return nil
}

func (r *deviceRepository) DeactivateByTokens(_ context.Context, tokens []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	invalid := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		invalid[t] = struct{}{}
	}

	var n int64
	for _, d := range r.s.devices {
		if _, ok := invalid[d.FCMToken]; ok && d.IsActive {
			d.IsActive = false
			d.UpdatedAt = r.s.now()
			n++
		}
	}

	return n, nil
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.devices[id]; !ok {
		return repository.ErrDeviceNotFound
	}
	delete(r.s.devices, id)
	delete(r.s.order, id)

	return nil
}
