package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/rolodex/internal/contacts/application"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/contacts/infrastructure/persistence"
	sharedCrypto "github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/rolodex/pkg/config"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

var now = time.Date(2017, time.January, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		AppEnv:                  "test",
		SnapshotBackend:         backend,
		SnapshotPath:            filepath.Join(dir, "contacts.snapshot"),
		SnapshotName:            "default",
		SQLitePath:              filepath.Join(dir, "rolodex.db"),
		BreakerFailureThreshold: 5,
		BreakerTimeout:          time.Second,
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	c, err := NewContainer(context.Background(), cfg, observability.NopLogger(), application.WithClock(fixedClock))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewContainer_FileBackendRoundTrip(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	ctx := context.Background()

	first := newTestContainer(t, cfg)
	assert.IsType(t, &persistence.FileStore{}, first.Store)
	assert.Nil(t, first.Breaker)
	assert.IsType(t, &eventbus.InProcessEventBus{}, first.EventPublisher)

	id, err := first.ContactManager.AddNewContact("Ada", "met at the conference")
	require.NoError(t, err)
	require.NoError(t, first.ContactManager.Flush(ctx))

	_, err = os.Stat(cfg.SnapshotPath)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ActivityLog.Count(domain.RoutingKeyContactAdded))

	second := newTestContainer(t, cfg)
	contacts, err := second.ContactManager.GetContactsByID(id)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ada", contacts[0].Name())
}

func TestNewContainer_SQLiteBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	ctx := context.Background()

	c := newTestContainer(t, cfg)
	require.NotNil(t, c.DBConn)

	_, err := c.ContactManager.AddNewContact("Grace", "navy")
	require.NoError(t, err)
	require.NoError(t, c.ContactManager.Flush(ctx))

	results := c.Health.Check(ctx)
	require.Len(t, results, 2)
	assert.Equal(t, observability.HealthStatusHealthy, observability.OverallStatus(results))

	reopened := newTestContainer(t, cfg)
	assert.Len(t, reopened.ContactManager.Contacts(), 1)
}

func TestNewContainer_MemoryBackendStartsEmpty(t *testing.T) {
	c := newTestContainer(t, testConfig(t, config.BackendMemory))

	assert.Empty(t, c.ContactManager.Contacts())
	assert.Empty(t, c.ContactManager.Meetings())
	assert.Equal(t, now, c.ContactManager.Now())
}

func TestNewContainer_EncryptedSnapshot(t *testing.T) {
	key, err := sharedCrypto.GenerateKey()
	require.NoError(t, err)

	cfg := testConfig(t, config.BackendFile)
	cfg.EncryptionKey = key
	ctx := context.Background()

	c := newTestContainer(t, cfg)
	assert.IsType(t, &persistence.EncryptedStore{}, c.Store)

	_, err = c.ContactManager.AddNewContact("Linus", "kernel")
	require.NoError(t, err)
	require.NoError(t, c.ContactManager.Flush(ctx))

	raw, err := os.ReadFile(cfg.SnapshotPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Linus")

	reopened := newTestContainer(t, cfg)
	assert.Len(t, reopened.ContactManager.GetContactsByName("Linus"), 1)
}

func TestNewContainer_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config", func(t *testing.T) {
		_, err := NewContainer(ctx, nil, observability.NopLogger())
		require.Error(t, err)
	})

	t.Run("bad encryption key", func(t *testing.T) {
		cfg := testConfig(t, config.BackendMemory)
		cfg.EncryptionKey = "not-base64!"
		_, err := NewContainer(ctx, cfg, observability.NopLogger())
		require.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig(t, "tape")
		_, err := NewContainer(ctx, cfg, observability.NopLogger())
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
