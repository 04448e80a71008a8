package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/services"
)

// DirectoryListResponse for GET /api/{collection}
type DirectoryListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// DirectoryHandler serves the CRUD surface of one directory collection.
// All eight collections share this handler; only the service differs.
type DirectoryHandler[T any] struct {
	name    string
	service *services.DirectoryService[T]
	logger  *zap.Logger
}

// NewDirectoryHandler creates a handler for the collection mounted at
// /api/{name}.
func NewDirectoryHandler[T any](
	name string,
	service *services.DirectoryService[T],
	logger *zap.Logger,
) *DirectoryHandler[T] {
	return &DirectoryHandler[T]{
		name:    name,
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the collection's routes on the given mux.
func (h *DirectoryHandler[T]) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/" + h.name

	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("PUT "+base+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
}

// List handles GET /api/{collection}
func (h *DirectoryHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response := DirectoryListResponse[T]{Items: items, Total: len(items)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/{collection}
func (h *DirectoryHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: created}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /api/{collection}/{id}
func (h *DirectoryHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	updated, err := h.service.Update(r.Context(), id, item)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: updated}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/{collection}/{id}
func (h *DirectoryHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
