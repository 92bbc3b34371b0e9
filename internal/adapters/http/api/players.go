// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rostermix/rostermix/internal/adapters/repository"
	"github.com/rostermix/rostermix/internal/domain/model"
)

// PlayerDependencies defines the interface for roster operations.
type PlayerDependencies interface {
	Players(ctx context.Context) []model.Player
	AddPlayer(ctx context.Context, name string) (model.Player, error)
	UpdatePlayer(ctx context.Context, id string, patch model.PlayerPatch) (model.Player, error)
	RemovePlayer(ctx context.Context, id string) error
	MovePlayer(ctx context.Context, id string, teamIndex int) error
}

// PlayersHandler handles roster requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

type movePlayerRequest struct {
	TeamIndex *int `json:"teamIndex"`
}

// HandlePlayers handles GET /players and POST /players requests.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.players"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Players(r.Context()))
	case http.MethodPost:
		var req addPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		player, err := h.deps.AddPlayer(r.Context(), req.Name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusCreated, player)
	default:
		http.NotFound(w, r)
	}
}

// HandlePlayer handles PATCH/DELETE /players/{id} and POST /players/{id}/move.
func (h *PlayersHandler) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.player"
	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case action == "move" && r.Method == http.MethodPost:
		var req movePlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		target := -1
		if req.TeamIndex != nil {
			target = *req.TeamIndex
		}
		if err := h.deps.MovePlayer(r.Context(), id, target); err != nil {
			h.writePlayerError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "moved"})

	case action == "" && r.Method == http.MethodPatch:
		var patch model.PlayerPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		player, err := h.deps.UpdatePlayer(r.Context(), id, patch)
		if err != nil {
			h.writePlayerError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, player)

	case action == "" && r.Method == http.MethodDelete:
		if err := h.deps.RemovePlayer(r.Context(), id); err != nil {
			h.writePlayerError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})

	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) writePlayerError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
}
