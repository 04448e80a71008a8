package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// SettingsService manages the singleton admin display profile.
type SettingsService interface {
	Profile(ctx context.Context) (models.AdminProfile, error)
	SaveProfile(ctx context.Context, profile models.AdminProfile) (models.AdminProfile, error)
}

type settingsService struct {
	repo   *repositories.AdminProfileRepository
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo *repositories.AdminProfileRepository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

var _ SettingsService = (*settingsService)(nil)

func (s *settingsService) Profile(ctx context.Context) (models.AdminProfile, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) SaveProfile(ctx context.Context, profile models.AdminProfile) (models.AdminProfile, error) {
	if err := validateStruct(profile); err != nil {
		return models.AdminProfile{}, err
	}
	if err := s.repo.Save(ctx, profile); err != nil {
		return models.AdminProfile{}, err
	}
	s.logger.Info("admin profile updated", zap.String("name", profile.Name))
	return profile, nil
}
