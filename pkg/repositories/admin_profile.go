package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/store"
)

// KeyAdminProfile is the singleton slot holding the operator profile.
const KeyAdminProfile = "adminProfile"

// AdminProfileRepository stores the singleton admin display profile.
// Same contract as Collection, for a single record instead of a sequence.
type AdminProfileRepository struct {
	store    store.Store
	defaults models.AdminProfile
	logger   *zap.Logger
}

// NewAdminProfileRepository creates the singleton profile repository.
func NewAdminProfileRepository(
	s store.Store,
	defaults models.AdminProfile,
	logger *zap.Logger,
) *AdminProfileRepository {
	return &AdminProfileRepository{
		store:    s,
		defaults: defaults,
		logger:   logger.Named("gateway"),
	}
}

// Get returns the stored profile, or the default profile if none was ever
// saved or the store is unreachable. Undecodable stored data is reported
// as apperrors.ErrStorageCorrupt.
func (r *AdminProfileRepository) Get(ctx context.Context) (models.AdminProfile, error) {
	raw, err := r.store.Get(ctx, KeyAdminProfile)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return r.defaults, nil
		}
		if ctx.Err() != nil {
			return models.AdminProfile{}, err
		}
		r.logger.Warn("store unreachable, serving default profile",
			zap.Error(err))
		return r.defaults, nil
	}

	var profile models.AdminProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return models.AdminProfile{}, fmt.Errorf("%s: %w: %v",
			KeyAdminProfile, apperrors.ErrStorageCorrupt, err)
	}
	return profile, nil
}

// Save overwrites the stored profile.
func (r *AdminProfileRepository) Save(ctx context.Context, profile models.AdminProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode admin profile: %w", err)
	}
	if err := r.store.Set(ctx, KeyAdminProfile, raw); err != nil {
		return fmt.Errorf("%w: %s: %v",
			apperrors.ErrStorageUnavailable, KeyAdminProfile, err)
	}
	return nil
}
