package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/services"
)

// SettingsHandler serves the singleton admin profile.
type SettingsHandler struct {
	settings services.SettingsService
	logger   *zap.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings services.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// RegisterRoutes registers the settings routes on the given mux.
func (h *SettingsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/settings/profile", h.Profile)
	mux.HandleFunc("PUT /api/settings/profile", h.SaveProfile)
}

// Profile handles GET /api/settings/profile
func (h *SettingsHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.settings.Profile(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: profile}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// SaveProfile handles PUT /api/settings/profile
func (h *SettingsHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.AdminProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	saved, err := h.settings.SaveProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: saved}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
