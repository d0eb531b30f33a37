package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON writes payload as JSON with status. A payload that cannot be
// encoded becomes a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" failed", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgItemNotFoundError         = "Item not found"
	ErrMsgPanelNotFoundError        = "Panel not found"
	ErrMsgSessionNotFoundError      = "No open session on that panel. Open one first."
	ErrMsgStoredRecipeNotFoundError = "Stored recipe not found"
	ErrMsgSlotNotFoundError         = "Slot not found"
	ErrMsgSlotLockedError           = "That slot is locked"
	ErrMsgItemRejectedError         = "That item cannot go in this slot"
	ErrMsgInsufficientMaterialError = "Not enough material"
	ErrMsgNecessarySlotEmptyError   = "A necessary slot is empty"
	ErrMsgCraftCanceledError        = "The craft was canceled"
	ErrMsgUnresolvedReferenceError  = "A result could not be found"
	ErrMsgInvalidInputError         = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMaterialGone):
		// The wrapped message carries the name suggestion
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrPanelNotFound):
		return http.StatusNotFound, ErrMsgPanelNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrStoredRecipeNotFound):
		return http.StatusNotFound, ErrMsgStoredRecipeNotFoundError
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrActorNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusBadRequest, ErrMsgSlotNotFoundError
	case errors.Is(err, domain.ErrSlotLocked):
		return http.StatusForbidden, ErrMsgSlotLockedError
	case errors.Is(err, domain.ErrItemRejected):
		return http.StatusBadRequest, ErrMsgItemRejectedError
	case errors.Is(err, domain.ErrInsufficientMaterial):
		return http.StatusConflict, ErrMsgInsufficientMaterialError
	case errors.Is(err, domain.ErrNecessarySlotEmpty):
		return http.StatusUnprocessableEntity, ErrMsgNecessarySlotEmptyError
	case errors.Is(err, domain.ErrCraftCanceled):
		return http.StatusConflict, ErrMsgCraftCanceledError
	case errors.Is(err, domain.ErrUnresolvedReference):
		return http.StatusUnprocessableEntity, ErrMsgUnresolvedReferenceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabase):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
