package persistence

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/crypto"
)

// EncryptedStore seals snapshot bytes before handing them to the inner store.
type EncryptedStore struct {
	inner     domain.SnapshotStore
	encrypter crypto.Encrypter
}

// NewEncryptedStore wraps inner with encrypter.
func NewEncryptedStore(inner domain.SnapshotStore, encrypter crypto.Encrypter) *EncryptedStore {
	return &EncryptedStore{inner: inner, encrypter: encrypter}
}

func (s *EncryptedStore) Load(ctx context.Context) ([]byte, error) {
	sealed, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.encrypter.Decrypt(sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt snapshot: %w", err)
	}
	return data, nil
}

func (s *EncryptedStore) Save(ctx context.Context, data []byte) error {
	sealed, err := s.encrypter.Encrypt(data)
	if err != nil {
		return fmt.Errorf("failed to encrypt snapshot: %w", err)
	}
	return s.inner.Save(ctx, sealed)
}

func (s *EncryptedStore) Delete(ctx context.Context) error {
	return s.inner.Delete(ctx)
}
