package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/services"
)

// NotificationListResponse for GET /api/notifications
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// NotificationsHandler serves the admin notification panel.
type NotificationsHandler struct {
	notifications services.NotificationService
	logger        *zap.Logger
}

// NewNotificationsHandler creates a new notifications handler.
func NewNotificationsHandler(
	notifications services.NotificationService,
	logger *zap.Logger,
) *NotificationsHandler {
	return &NotificationsHandler{
		notifications: notifications,
		logger:        logger,
	}
}

// RegisterRoutes registers the notification routes on the given mux.
func (h *NotificationsHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/notifications"

	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("POST "+base+"/read-all", h.MarkAllRead)
	mux.HandleFunc("POST "+base+"/{id}/read", h.MarkRead)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
}

// List handles GET /api/notifications
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.notifications.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}

	response := NotificationListResponse{Notifications: items, Unread: unread}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// MarkRead handles POST /api/notifications/{id}/read
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// MarkAllRead handles POST /api/notifications/read-all
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkAllRead(r.Context()); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/notifications/{id}
func (h *NotificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.notifications.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
