// Package repositories implements the persistence gateway: typed
// repositories over named key-value slots, with default seed data served
// until a collection is first written.
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/store"
)

// Collection is a typed repository over one named slot. All reads and
// writes cover the full collection; callers read-modify-write.
type Collection[T any] struct {
	store        store.Store
	key          string
	defaultsJSON []byte
	logger       *zap.Logger
}

// NewCollection creates a repository for the slot named key. The defaults
// are served whenever the slot has never been written. They are captured
// by value at construction so later callers cannot mutate the seed data.
func NewCollection[T any](
	s store.Store,
	key string,
	defaults []T,
	logger *zap.Logger,
) (*Collection[T], error) {
	if defaults == nil {
		defaults = []T{}
	}
	raw, err := json.Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults for %q: %w", key, err)
	}
	return &Collection[T]{
		store:        s,
		key:          key,
		defaultsJSON: raw,
		logger:       logger.Named("gateway"),
	}, nil
}

// Key returns the storage key of this collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Get returns the stored collection. A slot that has never been written
// yields the defaults; an unreachable store also falls back to the
// defaults rather than failing the read. A slot that is present but not
// decodable is reported as apperrors.ErrStorageCorrupt so the caller can
// decide between resetting and aborting; the bad data is never silently
// replaced.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return c.defaults()
		}
		if ctx.Err() != nil {
			return nil, err
		}
		c.logger.Warn("store unreachable, serving defaults",
			zap.String("collection", c.key),
			zap.Error(err))
		return c.defaults()
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("collection %q: %w: %v",
			c.key, apperrors.ErrStorageCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save overwrites the full collection in a single key write. A nil slice
// is stored as an explicit empty collection, which stays empty on later
// reads instead of reverting to the defaults.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%w: collection %q: %v",
			apperrors.ErrStorageUnavailable, c.key, err)
	}
	return nil
}

// defaults returns a fresh deep copy of the seed data.
func (c *Collection[T]) defaults() ([]T, error) {
	var items []T
	if err := json.Unmarshal(c.defaultsJSON, &items); err != nil {
		return nil, fmt.Errorf("failed to decode defaults for %q: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
