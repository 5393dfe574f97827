// Command maintenance runs one-off jobs against the configured store.
//
//	maintenance migrate   apply pending schema migrations
//	maintenance sweep     delete expired OTPs and locations past retention
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mapic/config"
	"mapic/internal/domain/lifecycle"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/clock"
	logs "mapic/internal/infra/log"
	"mapic/internal/infra/persistence"
	"mapic/internal/usecase"
	"mapic/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	cmdMigrate = "migrate"
	cmdSweep   = "sweep"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [migrate|sweep]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch flag.Arg(0) {
	case cmdMigrate:
		err = migrate()
	case cmdSweep:
		err = sweep()
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("Maintenance job failed", slog.String("job", flag.Arg(0)), slog.Any("error", err))
		os.Exit(1)
	}
}

// migrate starts the postgres store with auto-migration forced on. The store runs goose on start.
func migrate() error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
		),
		fx.Decorate(func(cfg *config.Config) (*config.Config, error) {
			if cfg.Storage == nil {
				cfg.Storage = &config.StorageConfig{}
			}
			if cfg.Storage.Driver == config.StorageDriverMemory {
				return nil, errors.New("migrate requires the postgres storage driver")
			}
			cfg.Storage.AutoMigrate = true

			return cfg, nil
		}),
		persistence.Module,
		fx.Invoke(func(repository.TransactionManager) {}),
	)

	return run(app, func(context.Context) error { return nil })
}

func sweep() error {
	var (
		maintenance usecase.MaintenanceUsecase
		logger      *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			clock.NewSystemClock,
			impl.NewOtpService,
			impl.NewLocationService,
			impl.NewMaintenanceService,
		),
		persistence.Module,
		fx.Populate(&maintenance, &logger),
	)

	return run(app, func(ctx context.Context) error {
		report, err := maintenance.Sweep(ctx)
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "Sweep finished",
			slog.Int64("expired_otps", report.ExpiredOtps),
			slog.Int64("old_locations", report.OldLocations),
		)

		return nil
	})
}

func run(app *fx.App, job func(context.Context) error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	jobErr := job(context.Background())

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && jobErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return jobErr
}
