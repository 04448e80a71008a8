package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/services"
)

// RegistrationListResponse for GET /api/registrations
type RegistrationListResponse struct {
	Registrations []models.Registration `json:"registrations"`
	Total         int                   `json:"total"`
}

// ReconcileResponse for POST /api/registrations/reconcile
type ReconcileResponse struct {
	MembersCreated int `json:"membersCreated"`
}

// RegistrationsHandler serves the registration approval workflow.
type RegistrationsHandler struct {
	workflow services.RegistrationWorkflowService
	logger   *zap.Logger
}

// NewRegistrationsHandler creates a new registrations handler.
func NewRegistrationsHandler(
	workflow services.RegistrationWorkflowService,
	logger *zap.Logger,
) *RegistrationsHandler {
	return &RegistrationsHandler{
		workflow: workflow,
		logger:   logger,
	}
}

// RegisterRoutes registers the workflow's routes on the given mux.
func (h *RegistrationsHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/registrations"

	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("POST "+base+"/reconcile", h.Reconcile)
	mux.HandleFunc("POST "+base+"/{id}/approve", h.Approve)
	mux.HandleFunc("POST "+base+"/{id}/reject", h.Reject)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
}

// List handles GET /api/registrations
func (h *RegistrationsHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.workflow.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response := RegistrationListResponse{Registrations: regs, Total: len(regs)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Approve handles POST /api/registrations/{id}/approve
func (h *RegistrationsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	member, err := h.workflow.Approve(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: member}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Reject handles POST /api/registrations/{id}/reject
func (h *RegistrationsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	reg, err := h.workflow.Reject(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: reg}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/registrations/{id}
func (h *RegistrationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.workflow.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Reconcile handles POST /api/registrations/reconcile
func (h *RegistrationsHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	created, err := h.workflow.Reconcile(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response := ReconcileResponse{MembersCreated: created}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
