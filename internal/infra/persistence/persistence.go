// Package persistence selects the repository backend from storage.driver.
package persistence

import (
	"context"
	"log/slog"

	"mapic/config"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/memory"
	"mapic/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repository set, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes every store to the graph.
type Repositories struct {
	fx.Out

	Users       repository.UserRepository
	Locations   repository.LocationRepository
	Friendships repository.FriendshipRepository
	Places      repository.PlaceRepository
	CheckIns    repository.CheckInRepository
	Otps        repository.OtpRepository
	Devices     repository.DeviceRepository
	TxManager   repository.TransactionManager
}

// New builds the postgres stores by default and the in-memory store when storage.driver is "memory".
func New(params Params) (Repositories, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")

		store := memory.NewStore()
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.SeedPlaces(ctx)
			},
		})

		return Repositories{
			Users:       store.Users(),
			Locations:   store.Locations(),
			Friendships: store.Friendships(),
			Places:      store.Places(),
			CheckIns:    store.CheckIns(),
			Otps:        store.Otps(),
			Devices:     store.Devices(),
			TxManager:   store.TxManager(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}
		repos := postgres.NewRepositories(db)

		return Repositories{
			Users:       repos.Users,
			Locations:   repos.Locations,
			Friendships: repos.Friendships,
			Places:      repos.Places,
			CheckIns:    repos.CheckIns,
			Otps:        repos.Otps,
			Devices:     repos.Devices,
			TxManager:   repos.TxManager,
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
