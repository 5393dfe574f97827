// Package memory is an in-process implementation of every repository.
// Records live in maps keyed by id and reference each other by id only.
package memory

import (
	"sync"
	"time"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds all tables. Reads take the read lock; every write takes the write lock.
type Store struct {
	mu sync.RWMutex
	// txMu serialises TransactionManager.Execute.
	txMu sync.Mutex

	users       map[uuid.UUID]*entity.User
	locations   map[uuid.UUID]*entity.LocationSample
	friendships map[uuid.UUID]*entity.Friendship
	places      map[uuid.UUID]*entity.Place
	checkIns    map[uuid.UUID]*entity.CheckIn
	otps        map[uuid.UUID]*entity.OtpRecord
	devices     map[uuid.UUID]*entity.UserDevice

	// order records insertion sequence so listings are stable.
	order map[uuid.UUID]uint64
	seq   uint64

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*entity.User),
		locations:   make(map[uuid.UUID]*entity.LocationSample),
		friendships: make(map[uuid.UUID]*entity.Friendship),
		places:      make(map[uuid.UUID]*entity.Place),
		checkIns:    make(map[uuid.UUID]*entity.CheckIn),
		otps:        make(map[uuid.UUID]*entity.OtpRecord),
		devices:     make(map[uuid.UUID]*entity.UserDevice),
		order:       make(map[uuid.UUID]uint64),
		now:         time.Now,
	}
}

func (s *Store) Users() repository.UserRepository             { return &userRepository{s: s} }
func (s *Store) Locations() repository.LocationRepository     { return &locationRepository{s: s} }
func (s *Store) Friendships() repository.FriendshipRepository { return &friendshipRepository{s: s} }
func (s *Store) Places() repository.PlaceRepository           { return &placeRepository{s: s} }
func (s *Store) CheckIns() repository.CheckInRepository       { return &checkInRepository{s: s} }
func (s *Store) Otps() repository.OtpRepository               { return &otpRepository{s: s} }
func (s *Store) Devices() repository.DeviceRepository         { return &deviceRepository{s: s} }

// TxManager returns a TransactionManager over this store.
func (s *Store) TxManager() repository.TransactionManager { return &txManager{s: s} }

// insert assigns an id when missing and records insertion order. Caller holds the write lock.
func (s *Store) insert(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.Must(uuid.NewV7())
	}
	s.seq++
	s.order[*id] = s.seq
}

// before orders a then b by insertion.
func (s *Store) before(a, b uuid.UUID) bool {
	return s.order[a] < s.order[b]
}

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}
