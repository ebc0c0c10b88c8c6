package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database/sqlite"
)

func newSQLiteConnection(t *testing.T) database.Connection {
	t.Helper()
	conn, err := database.NewConnection(context.Background(), database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "rolodex.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestSQLStore_SQLite(t *testing.T) {
	conn := newSQLiteConnection(t)
	store, err := NewSQLStore(context.Background(), conn, "default")
	require.NoError(t, err)

	exerciseStore(t, store)
}

func TestSQLStore_NamesAreIndependent(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteConnection(t)

	work, err := NewSQLStore(ctx, conn, "work")
	require.NoError(t, err)
	home, err := NewSQLStore(ctx, conn, "home")
	require.NoError(t, err)

	require.NoError(t, work.Save(ctx, []byte("work")))
	require.NoError(t, home.Save(ctx, []byte("home")))
	require.NoError(t, home.Delete(ctx))

	data, err := work.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "work", string(data))

	var rows int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestNewSQLStore_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteConnection(t)

	_, err := NewSQLStore(ctx, conn, "")
	require.NoError(t, err)
	_, err = NewSQLStore(ctx, conn, "")
	require.NoError(t, err)
}
