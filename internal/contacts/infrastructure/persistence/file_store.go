// Package persistence provides snapshot stores for the contact register.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/security"
)

// DefaultSnapshotFile is the snapshot file name used when none is configured.
const DefaultSnapshotFile = "contacts.snapshot"

// FileStore keeps the snapshot in a single local file. Writes replace the
// file atomically.
type FileStore struct {
	path string
}

// NewFileStore validates path and returns a store for it. The file does not
// need to exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultSnapshotFile
	}
	clean, err := security.ValidateFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot path: %w", err)
	}
	return &FileStore{path: clean}, nil
}

// Path returns the resolved snapshot file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := security.SafeReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := security.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}
	return nil
}
