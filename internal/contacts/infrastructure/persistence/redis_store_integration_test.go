//go:build integration

package persistence

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore_Integration(t *testing.T) {
	client := newRedisClient(t)
	store := NewRedisStore(client, "integration")

	exerciseStore(t, store)
	assert.Equal(t, "rolodex:snapshot:integration", store.Key())
}

func TestRedisStore_Integration_ThroughBreaker(t *testing.T) {
	client := newRedisClient(t)
	store := NewBreakerStore(NewRedisStore(client, "guarded"), DefaultBreakerConfig("redis"), nil)

	exerciseStore(t, store)
}
