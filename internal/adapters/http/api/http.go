// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rostermix/rostermix/internal/adapters/export"
	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Roster operations.
	Players(ctx context.Context) []model.Player
	AddPlayer(ctx context.Context, name string) (model.Player, error)
	UpdatePlayer(ctx context.Context, id string, patch model.PlayerPatch) (model.Player, error)
	RemovePlayer(ctx context.Context, id string) error
	MovePlayer(ctx context.Context, id string, teamIndex int) error

	// Assignment operations.
	Teams(ctx context.Context) []model.Team
	RenameTeam(ctx context.Context, index int, name string) error
	Randomize(ctx context.Context) ([]model.Team, error)
	FillRemaining(ctx context.Context) ([]model.Team, error)
	ValidateTeam(ctx context.Context, index int) (types.TeamValidation, error)

	// Configuration.
	Settings(ctx context.Context) model.Settings
	UpdateSettings(ctx context.Context, settings model.Settings) error

	// History.
	History(ctx context.Context) []model.HistoryEntry
	RestoreHistory(ctx context.Context, id string) error
	ClearHistory(ctx context.Context)

	// Transfer surfaces.
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) bool
	ShareLink(ctx context.Context) (string, error)
	DecodeShareLink(ctx context.Context, encoded string) (export.SharePayload, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	playersHandler  *PlayersHandler
	teamsHandler    *TeamsHandler
	settingsHandler *SettingsHandler
	historyHandler  *HistoryHandler
	transferHandler *TransferHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		playersHandler:  NewPlayersHandler(deps),
		teamsHandler:    NewTeamsHandler(deps),
		settingsHandler: NewSettingsHandler(deps),
		historyHandler:  NewHistoryHandler(deps),
		transferHandler: NewTransferHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayer, "player"))

	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleTeams, "teams"))
	mux.HandleFunc("/teams/randomize", MetricsMiddleware(s.teamsHandler.HandleRandomize, "randomize"))
	mux.HandleFunc("/teams/fill", MetricsMiddleware(s.teamsHandler.HandleFill, "fill"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleTeam, "team"))

	mux.HandleFunc("/settings", MetricsMiddleware(s.settingsHandler.HandleSettings, "settings"))

	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleHistory, "history"))
	mux.HandleFunc("/history/", MetricsMiddleware(s.historyHandler.HandleEntry, "history_entry"))

	mux.HandleFunc("/export", MetricsMiddleware(s.transferHandler.HandleExport, "export"))
	mux.HandleFunc("/import", MetricsMiddleware(s.transferHandler.HandleImport, "import"))
	mux.HandleFunc("/share", MetricsMiddleware(s.transferHandler.HandleShare, "share"))
	mux.HandleFunc("/share/decode", MetricsMiddleware(s.transferHandler.HandleShareDecode, "share_decode"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
