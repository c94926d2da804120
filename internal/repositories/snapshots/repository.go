// Package snapshots persists store state snapshots in durable local storage.
// Each store writes its serialized state under its own key after every
// mutation and reads it back once at startup.
package snapshots

import "context"

// Repository is a small key/value store over the local database.
type Repository interface {
	// Get returns the snapshot stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous snapshot.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the snapshot under key. Absent keys are not an error.
	Delete(ctx context.Context, key string) error
}
