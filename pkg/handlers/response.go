// Package handlers exposes the admin engine as a JSON HTTP API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/services"
)

// ApiResponse is the envelope of every successful response.
type ApiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the error taxonomy to HTTP responses. Typed
// failures stay distinguishable on the wire so a failed operation never
// looks like "nothing happened".
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var statusCode int
	var errorCode string
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		statusCode, errorCode = http.StatusBadRequest, "validation_error"
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode, errorCode = http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrInvalidTransition):
		statusCode, errorCode = http.StatusConflict, "invalid_transition"
	case errors.Is(err, apperrors.ErrPartialWorkflow):
		statusCode, errorCode = http.StatusInternalServerError, "partial_workflow_failure"
	case errors.Is(err, apperrors.ErrStorageCorrupt):
		statusCode, errorCode = http.StatusInternalServerError, "storage_corrupt"
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		statusCode, errorCode = http.StatusServiceUnavailable, "storage_unavailable"
	case errors.Is(err, services.ErrDraftingUnavailable):
		statusCode, errorCode = http.StatusServiceUnavailable, "drafting_unavailable"
	default:
		statusCode, errorCode = http.StatusInternalServerError, "internal_error"
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", errorCode), zap.Error(err))
	}
	if err := ErrorResponse(w, statusCode, errorCode, err.Error()); err != nil {
		logger.Error("Failed to write error response", zap.Error(err))
	}
}
