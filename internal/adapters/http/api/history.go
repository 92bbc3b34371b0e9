// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// HistoryDependencies defines the interface for snapshot operations.
type HistoryDependencies interface {
	History(ctx context.Context) []model.HistoryEntry
	RestoreHistory(ctx context.Context, id string) error
	ClearHistory(ctx context.Context)
}

// HistoryHandler handles randomization history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleHistory handles GET /history and DELETE /history requests.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.History(r.Context()))
	case http.MethodDelete:
		h.deps.ClearHistory(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	default:
		http.NotFound(w, r)
	}
}

// HandleEntry handles POST /history/{id}/restore requests.
func (h *HistoryHandler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	const op = "api.history_restore"
	rest := strings.TrimPrefix(r.URL.Path, "/history/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" || action != "restore" || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.RestoreHistory(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
