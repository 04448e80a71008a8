// Package store provides the key-value storage backends behind the
// persistence gateway. Each named collection occupies a single key whose
// value is the serialized collection.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Backend names accepted by Open.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrKeyNotFound is returned by Get when the key has never been set.
var ErrKeyNotFound = errors.New("key not found")

// Store is the minimal key-value contract the gateway depends on.
// Set overwrites the full value of a key atomically; there is no partial
// update primitive.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open returns the store backend selected by name. The memory backend
// ignores path and loses its contents on Close.
func Open(backend, path string, logger *zap.Logger) (Store, error) {
	switch backend {
	case BackendBadger:
		return NewBadger(path, logger)
	case BackendSQLite:
		return NewSQLite(path)
	case BackendMemory:
		return NewMemory()
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
