package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/services"
)

// DraftRequest for POST /api/announcements/draft
type DraftRequest struct {
	Topic string `json:"topic"`
}

// DraftResponse carries the generated announcement text.
type DraftResponse struct {
	Content string `json:"content"`
}

// DraftHandler serves AI-assisted announcement drafting.
type DraftHandler struct {
	drafts services.AnnouncementDraftService
	logger *zap.Logger
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(drafts services.AnnouncementDraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{drafts: drafts, logger: logger}
}

// RegisterRoutes registers the draft route on the given mux.
func (h *DraftHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/announcements/draft", h.Draft)
}

// Draft handles POST /api/announcements/draft
func (h *DraftHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	content, err := h.drafts.Draft(r.Context(), req.Topic)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: DraftResponse{Content: content}}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
