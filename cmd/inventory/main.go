package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/ihuza-inventory/internal/application/auth"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/badger"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/ihuza-inventory/internal/interfaces/cli"
	"github.com/jhoicas/ihuza-inventory/pkg/config"
	"github.com/jhoicas/ihuza-inventory/pkg/logger"
)

// snapshotStore adaptador de persistencia con liberación de recursos.
type snapshotStore interface {
	repository.SnapshotStore
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return cli.ExitFailure
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir store")
		return cli.ExitFailure
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar store")
		}
	}()

	dataUC := usecase.NewDataUseCase(store, log, usecase.DataOptions{
		BcryptCost: cfg.Security.BcryptCost,
	})
	if err := dataUC.Load(ctx); err != nil {
		log.Error().Err(err).Msg("cargar colecciones")
		return cli.ExitFailure
	}
	authUC := auth.NewAuthUseCase(dataUC, store, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		Issuer:     cfg.Session.Issuer,
		BcryptCost: cfg.Security.BcryptCost,
	}, log)
	if err := authUC.Load(ctx); err != nil {
		log.Error().Err(err).Msg("cargar sesión")
		return cli.ExitFailure
	}

	return cli.Execute(ctx, cli.Deps{
		Data:  dataUC,
		Auth:  authUC,
		Theme: usecase.NewThemeUseCase(store, log),
		Log:   log,
	}, os.Args[1:])
}

// openStore elige el adaptador según STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (snapshotStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return memory.NewSnapshotStore(), nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store, err := postgres.NewSnapshotStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return badger.Open(badger.Config{
			Path:       cfg.Store.Path,
			SyncWrites: cfg.Store.SyncWrites,
			Logger:     log,
		})
	}
}
