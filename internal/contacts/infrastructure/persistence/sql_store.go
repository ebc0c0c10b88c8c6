package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/migrations"
)

// SQLStore keeps snapshots as blobs in a "snapshots" table keyed by name.
// It works on SQLite and PostgreSQL connections.
type SQLStore struct {
	conn database.Connection
	name string
}

// NewSQLStore migrates the snapshots table when missing.
func NewSQLStore(ctx context.Context, conn database.Connection, name string) (*SQLStore, error) {
	if name == "" {
		name = "default"
	}

	if err := migrations.Run(ctx, conn); err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &SQLStore{conn: conn, name: name}, nil
}

func (s *SQLStore) bind(n int) string {
	return s.conn.Driver().Placeholder(n)
}

func (s *SQLStore) Load(ctx context.Context) ([]byte, error) {
	query := "SELECT data FROM snapshots WHERE name = " + s.bind(1)

	var data []byte
	err := s.conn.QueryRow(ctx, query, s.name).Scan(&data)
	if database.IsNoRows(err) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %w", s.name, err)
	}
	return data, nil
}

// Save replaces the named snapshot inside a single transaction.
func (s *SQLStore) Save(ctx context.Context, data []byte) error {
	del := "DELETE FROM snapshots WHERE name = " + s.bind(1)
	ins := fmt.Sprintf("INSERT INTO snapshots (name, data, saved_at) VALUES (%s, %s, %s)", s.bind(1), s.bind(2), s.bind(3))
	savedAt := time.Now().UTC().Format(time.RFC3339Nano)

	err := database.RunInTx(ctx, s.conn, func(ctx context.Context, tx database.Executor) error {
		if _, err := tx.Exec(ctx, del, s.name); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, ins, s.name, data, savedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", s.name, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, "DELETE FROM snapshots WHERE name = "+s.bind(1), s.name); err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", s.name, err)
	}
	return nil
}
