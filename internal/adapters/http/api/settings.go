// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// SettingsDependencies defines the interface for configuration operations.
type SettingsDependencies interface {
	Settings(ctx context.Context) model.Settings
	UpdateSettings(ctx context.Context, settings model.Settings) error
}

// SettingsHandler handles tournament configuration requests.
type SettingsHandler struct {
	deps SettingsDependencies
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps SettingsDependencies) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// HandleSettings handles GET /settings and PUT /settings requests.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.settings"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Settings(r.Context()))
	case http.MethodPut:
		var settings model.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.UpdateSettings(r.Context(), settings); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid_settings", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, h.deps.Settings(r.Context()))
	default:
		http.NotFound(w, r)
	}
}
