package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// DirectoryService provides the shared CRUD behavior of the directory
// collections. Every mutation is a read-modify-write of the full
// collection through the gateway; validation failures never reach it.
type DirectoryService[T any] struct {
	repo   *repositories.Collection[T]
	logger *zap.Logger

	// idOf extracts the record id.
	idOf func(T) string
	// prepare readies a validated record for insertion: fresh id,
	// creation stamp, defaulted enum fields.
	prepare func(T) T
	// merge applies an update over an existing record, preserving its id
	// and creation stamp.
	merge func(prev, next T) T
}

// List returns the full collection.
func (s *DirectoryService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.Get(ctx)
}

// Create validates the record, assigns it an id and creation stamp, and
// prepends it to the collection (most recent first, matching the
// dashboard's display convention).
func (s *DirectoryService[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := validateStruct(item); err != nil {
		return zero, err
	}
	item = s.prepare(item)

	items, err := s.repo.Get(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", s.repo.Key(), err)
	}
	items = append([]T{item}, items...)
	if err := s.repo.Save(ctx, items); err != nil {
		return zero, fmt.Errorf("failed to save %s: %w", s.repo.Key(), err)
	}

	s.logger.Info("record created",
		zap.String("collection", s.repo.Key()),
		zap.String("id", s.idOf(item)))
	return item, nil
}

// Update replaces the record with the given id in place, preserving its
// id and creation stamp.
func (s *DirectoryService[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var zero T
	if err := validateStruct(item); err != nil {
		return zero, err
	}

	items, err := s.repo.Get(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", s.repo.Key(), err)
	}

	for i := range items {
		if s.idOf(items[i]) != id {
			continue
		}
		items[i] = s.merge(items[i], item)
		if err := s.repo.Save(ctx, items); err != nil {
			return zero, fmt.Errorf("failed to save %s: %w", s.repo.Key(), err)
		}
		return items[i], nil
	}
	return zero, fmt.Errorf("%s %s: %w", s.repo.Key(), id, apperrors.ErrNotFound)
}

// Delete removes the record with the given id.
func (s *DirectoryService[T]) Delete(ctx context.Context, id string) error {
	items, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", s.repo.Key(), err)
	}

	kept := items[:0:0]
	for _, item := range items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%s %s: %w", s.repo.Key(), id, apperrors.ErrNotFound)
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.repo.Key(), err)
	}
	return nil
}
