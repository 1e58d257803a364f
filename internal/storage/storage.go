// Package storage provides the durable key-value store the flight log
// persists its state blob into. Backends are interchangeable; the store
// treats writes as fire-and-forget and keeps in-memory state authoritative
// for the session when a backend fails.
package storage

import "context"

// Backend is a durable key-value store for opaque blobs.
type Backend interface {
	// Load returns the blob stored under key. The second return is false
	// when no blob has ever been saved under that key.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save durably replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Close releases backend resources.
	Close() error
}
