package postgres

import (
	"mapic/internal/domain/repository"

	"gorm.io/gorm"
)

// Repositories bundles the gorm-backed stores.
type Repositories struct {
	Users       repository.UserRepository
	Locations   repository.LocationRepository
	Friendships repository.FriendshipRepository
	Places      repository.PlaceRepository
	CheckIns    repository.CheckInRepository
	Otps        repository.OtpRepository
	Devices     repository.DeviceRepository
	TxManager   repository.TransactionManager
}

// NewRepositories builds every store on db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Locations:   NewLocationRepository(db),
		Friendships: NewFriendshipRepository(db),
		Places:      NewPlaceRepository(db),
		CheckIns:    NewCheckInRepository(db),
		Otps:        NewOtpRepository(db),
		Devices:     NewDeviceRepository(db),
		TxManager:   NewTransactionManager(db),
	}
}
