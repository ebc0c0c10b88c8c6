package domain

import "context"

// Snapshot is the whole state of a register, both collections in insertion order.
type Snapshot struct {
	Contacts []Contact
	Meetings []*Meeting
}

// SnapshotStore is durable byte storage for encoded snapshots. Load returns
// ErrSnapshotNotFound when nothing has been saved; Delete is a no-op in that case.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}
