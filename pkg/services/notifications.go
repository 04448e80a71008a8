package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// NotificationService manages the admin notification panel.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	repo   *repositories.Collection[models.Notification]
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *repositories.Collection[models.Notification], logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

var _ NotificationService = (*notificationService)(nil)

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.Get(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.repo.Get(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	items, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Read = true
			return s.repo.Save(ctx, items)
		}
	}
	return fmt.Errorf("notification %s: %w", id, apperrors.ErrNotFound)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	items, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	for i := range items {
		items[i].Read = true
	}
	return s.repo.Save(ctx, items)
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	items, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	kept := items[:0:0]
	for _, n := range items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("notification %s: %w", id, apperrors.ErrNotFound)
	}
	return s.repo.Save(ctx, kept)
}
