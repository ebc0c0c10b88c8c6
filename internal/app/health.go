package app

import (
	"context"

	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

func (c *Container) databaseChecker() observability.HealthChecker {
	return observability.PingChecker("database", func(ctx context.Context) error {
		return c.DBConn.Ping(ctx)
	})
}

func (c *Container) redisChecker() observability.HealthChecker {
	return observability.PingChecker("redis", func(ctx context.Context) error {
		return c.RedisClient.Ping(ctx).Err()
	})
}
