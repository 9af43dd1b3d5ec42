package recordstore

import "context"

// Store is the storage port every repository is built on. Values are opaque
// JSON documents; a key always addresses a whole collection, and every write
// replaces the previous value for that key (last writer wins, no merge).
type Store interface {
	// Get returns the raw value for key. The second return is false when the
	// key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites the full value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
