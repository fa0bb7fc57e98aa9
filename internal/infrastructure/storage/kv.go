package storage

import "context"

// KV is the durable key-value collaborator. Values are opaque byte blobs and
// must round-trip byte-exact. Get reports (nil, false, nil) for a missing key.
//
// Exactly one driver is active per deployment: sqlite for the local strategy,
// postgres or redis for the remote one, memory for tests.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
