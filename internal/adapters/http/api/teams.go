// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/internal/domain/types"
)

// TeamDependencies defines the interface for assignment operations.
type TeamDependencies interface {
	Teams(ctx context.Context) []model.Team
	RenameTeam(ctx context.Context, index int, name string) error
	Randomize(ctx context.Context) ([]model.Team, error)
	FillRemaining(ctx context.Context) ([]model.Team, error)
	ValidateTeam(ctx context.Context, index int) (types.TeamValidation, error)
}

// TeamsHandler handles team partition requests.
type TeamsHandler struct {
	deps TeamDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

type renameTeamRequest struct {
	Name string `json:"name"`
}

// HandleTeams handles GET /teams requests.
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Teams(r.Context()))
}

// HandleRandomize handles POST /teams/randomize requests.
func (h *TeamsHandler) HandleRandomize(w http.ResponseWriter, r *http.Request) {
	const op = "api.randomize"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.Randomize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleFill handles POST /teams/fill requests.
func (h *TeamsHandler) HandleFill(w http.ResponseWriter, r *http.Request) {
	const op = "api.fill"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.FillRemaining(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleTeam handles PATCH /teams/{index} and GET /teams/{index}/validation.
func (h *TeamsHandler) HandleTeam(w http.ResponseWriter, r *http.Request) {
	const op = "api.team"
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	idxStr, action, _ := strings.Cut(rest, "/")
	index, err := strconv.Atoi(idxStr)
	if err != nil || index < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case action == "validation" && r.Method == http.MethodGet:
		verdict, err := h.deps.ValidateTeam(r.Context(), index)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, verdict)

	case action == "" && r.Method == http.MethodPatch:
		var req renameTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if err := h.deps.RenameTeam(r.Context(), index, req.Name); err != nil {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})

	default:
		http.NotFound(w, r)
	}
}
