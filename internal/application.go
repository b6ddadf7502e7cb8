package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/config"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/emoji"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/repository"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/transport/console"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/usecase"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

// RunApp - runs the application on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	sessionRepo, closeStorage, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close storage", "error", closeErr)
		}
	}()

	catalog := emoji.NewCatalog(nil)
	gameManager := usecase.NewGameManager(logger, sessionRepo, catalog, usecase.Options{
		PlayerNames:      conf.PlayerNames,
		CustomMinSymbols: conf.CustomCategory.MinSymbols,
		CustomMaxSymbols: conf.CustomCategory.MaxSymbols,
	})

	log.Info("Starting console session", "storage", conf.Storage)

	if err = console.New(logger, gameManager, catalog).Serve(ctx, in, out); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	log.Info("Console session closed")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(conf.SessionTTL), func() error { return nil }, nil

	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSessionRepository(redisStorage.Connection, conf.SessionTTL), redisStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
