// Package handler exposes the audit trail over HTTP for compliance review.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"complyd/internal/audit"
	dErrors "complyd/pkg/domain-errors"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/platform/sentinel"
	"complyd/pkg/requestcontext"
)

// maxListLimit caps how many events one listing request can pull.
const maxListLimit = 500

// Handler wires the audit trail endpoint to the store.
type Handler struct {
	store  audit.Store
	logger *slog.Logger
}

// New constructs an audit handler with its dependencies.
func New(store audit.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/events", h.HandleListEvents)
}

// EventResponse is one audit trail entry.
type EventResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// ListResponse is the HTTP response body for GET /audit/events.
type ListResponse struct {
	Events []EventResponse `json:"events"`
}

// HandleListEvents handles GET /audit/events requests. The newest events
// come first; limit defaults to 50.
func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxListLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	events, err := h.store.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit trail listing failed",
			"request_id", requestID,
			"error", err,
		)
		if errors.Is(err, sentinel.ErrUnavailable) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "audit trail temporarily unavailable"))
			return
		}
		httputil.WriteError(w, err)
		return
	}

	resp := ListResponse{Events: make([]EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, EventResponse{
			ID:        e.ID.String(),
			Timestamp: e.Timestamp,
			Category:  string(e.Category),
			Action:    e.Action,
			Target:    e.Target,
			Outcome:   e.Outcome,
			RequestID: e.RequestID,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
