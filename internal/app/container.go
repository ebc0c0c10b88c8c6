package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/rolodex/internal/contacts/application"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/contacts/infrastructure/persistence"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/convert"
	sharedCrypto "github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/rolodex/pkg/config"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Backends, set only for the backend in use
	DBConn      database.Connection
	RedisClient *redis.Client

	// Snapshot store, fully wrapped
	Store   domain.SnapshotStore
	Breaker *persistence.BreakerStore

	// Events
	EventPublisher eventbus.Publisher
	ActivityLog    *application.ActivityLog

	ContactManager *application.ContactManager
	Health         *observability.HealthRegistry

	closers []func() error
}

// NewContainer wires the register for cfg and loads the last snapshot.
// Extra manager options (a fixed clock in tests) are applied after the
// container's own.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...application.Option) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		Health: observability.NewHealthRegistry(),
	}

	store, err := c.openStore(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	if cfg.IsRemoteBackend() {
		threshold, err := convert.IntToUint32(cfg.BreakerFailureThreshold)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("invalid BREAKER_FAILURE_THRESHOLD: %w", err)
		}
		c.Breaker = persistence.NewBreakerStore(store, persistence.BreakerConfig{
			Name:             cfg.SnapshotBackend,
			FailureThreshold: threshold,
			Timeout:          cfg.BreakerTimeout,
			MaxRequests:      1,
		}, logger)
		store = c.Breaker
	}

	if cfg.EncryptionKey != "" {
		encrypter, err := sharedCrypto.NewAESGCMFromBase64Key(cfg.EncryptionKey)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("invalid ROLODEX_ENCRYPTION_KEY: %w", err)
		}
		store = persistence.NewEncryptedStore(store, encrypter)
		logger.Debug("snapshot encryption enabled")
	}
	c.Store = store
	c.Health.Register("snapshot_store", observability.PingChecker("snapshot store", c.pingStore))

	if err := c.openPublisher(); err != nil {
		_ = c.Close()
		return nil, err
	}

	managerOpts := append([]application.Option{
		application.WithLogger(logger),
		application.WithPublisher(c.EventPublisher),
	}, opts...)
	c.ContactManager = application.NewContactManager(ctx, c.Store, managerOpts...)

	logger.Debug("container ready",
		"backend", cfg.SnapshotBackend,
		"encrypted", cfg.EncryptionKey != "",
	)
	return c, nil
}

// openPublisher connects to RabbitMQ when configured and otherwise delivers
// events in process to the activity log.
func (c *Container) openPublisher() error {
	if c.Config.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, c.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		c.EventPublisher = publisher
		c.closers = append(c.closers, publisher.Close)
		c.Health.Register("rabbitmq", observability.OptionalPingChecker("rabbitmq", publisher.Ping))
		return nil
	}

	bus := eventbus.NewInProcessEventBus(c.Logger)
	c.ActivityLog = application.NewActivityLog(c.Logger)
	bus.RegisterConsumer(c.ActivityLog)
	c.EventPublisher = bus
	c.closers = append(c.closers, bus.Close)
	return nil
}

// pingStore reads the snapshot. A missing snapshot is a healthy store.
func (c *Container) pingStore(ctx context.Context) error {
	_, err := c.Store.Load(ctx)
	if err == nil || errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil
	}
	return err
}

// Close releases every backend the container opened, in reverse order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
