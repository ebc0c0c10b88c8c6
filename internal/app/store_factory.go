package app

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/contacts/infrastructure/persistence"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/rolodex/pkg/config"
)

// openStore creates the raw snapshot store for the configured backend and
// registers the health checks and closers that belong to it.
func (c *Container) openStore(ctx context.Context) (domain.SnapshotStore, error) {
	cfg := c.Config

	switch cfg.SnapshotBackend {
	case config.BackendFile, "":
		store, err := persistence.NewFileStore(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot file: %w", err)
		}
		c.Logger.Debug("using file snapshot store", "path", store.Path())
		return store, nil

	case config.BackendMemory:
		return persistence.NewMemoryStore(), nil

	case config.BackendSQLite, config.BackendPostgres:
		return c.openSQLStore(ctx)

	case config.BackendRedis:
		client, err := persistence.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		c.RedisClient = client
		c.closers = append(c.closers, client.Close)
		c.Health.Register("redis", c.redisChecker())
		return persistence.NewRedisStore(client, cfg.SnapshotName), nil

	case config.BackendS3:
		return persistence.NewS3Store(ctx, persistence.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			Name:      cfg.SnapshotName,
		})

	default:
		return nil, fmt.Errorf("%w: unknown snapshot backend %q", config.ErrInvalidConfig, cfg.SnapshotBackend)
	}
}

func (c *Container) openSQLStore(ctx context.Context) (domain.SnapshotStore, error) {
	cfg := c.Config

	dbCfg := database.Config{URL: cfg.DatabaseURL}
	if cfg.SnapshotBackend == config.BackendSQLite {
		dbCfg.Driver = database.DriverSQLite
		dbCfg.SQLitePath = cfg.SQLitePath
	} else {
		dbCfg.Driver = database.DriverPostgres
	}

	conn, err := database.NewConnection(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dbCfg.Driver, err)
	}
	c.DBConn = conn
	c.closers = append(c.closers, conn.Close)
	c.Health.Register("database", c.databaseChecker())

	store, err := persistence.NewSQLStore(ctx, conn, cfg.SnapshotName)
	if err != nil {
		return nil, err
	}
	return store, nil
}
