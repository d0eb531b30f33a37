package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// Audit query error messages
const (
	ErrMsgInvalidTimestamp = "Invalid '%s' timestamp (use RFC3339)"
	ErrMsgInvalidLimit     = "Invalid 'limit' (must be 1-%d)"
	ErrMsgEventsFailed     = "Failed to retrieve events"
)

// AuditHandlers serves the craft audit log
type AuditHandlers struct {
	svc eventlog.Service
}

// NewAuditHandlers creates the audit handlers
func NewAuditHandlers(svc eventlog.Service) *AuditHandlers {
	return &AuditHandlers{svc: svc}
}

// HandleListEvents returns audit events newest first
// GET /api/v1/events?user_id=X&event_type=Y&since=Z&until=Z&limit=N
func (h *AuditHandlers) HandleListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		var filter eventlog.EventFilter

		if userID := query.Get("user_id"); userID != "" {
			filter.UserID = &userID
		}
		if eventType := query.Get("event_type"); eventType != "" {
			filter.EventType = &eventType
		}
		for _, bound := range []struct {
			name string
			dst  **time.Time
		}{{"since", &filter.Since}, {"until", &filter.Until}} {
			raw := query.Get(bound.name)
			if raw == "" {
				continue
			}
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidTimestamp, bound.name))
				return
			}
			*bound.dst = &ts
		}
		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 || limit > eventlog.MaxLimit {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLimit, eventlog.MaxLimit))
				return
			}
			filter.Limit = limit
		}

		events, err := h.svc.Events(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgEventsFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgEventsFailed)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: events})
	}
}
