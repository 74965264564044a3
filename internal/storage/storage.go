package storage

import "context"

// SnapshotStore persists serialized engine snapshots as opaque blobs.
type SnapshotStore interface {
	Put(ctx context.Context, name string, data []byte) (storedPath string, err error)
	Get(ctx context.Context, name string) ([]byte, error)
}
