// Package repository defines the roster state store interface and errors.
//
// The store owns the canonical players/teams/settings/history collections;
// the engine owns no persistent state and only ever sees values handed out
// by (and written back through) this interface.
package repository

import (
	"context"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// Store provides read/write access to the tournament state. Every read
// returns deep copies: callers can never alias live state.
type Store interface {
	// Players returns the canonical player collection.
	Players(ctx context.Context) []model.Player
	// SetPlayers replaces the player collection wholesale.
	SetPlayers(ctx context.Context, players []model.Player)
	// AddPlayer appends a player.
	AddPlayer(ctx context.Context, player model.Player)
	// UpdatePlayer replaces the player with the same id.
	// Returns ErrPlayerNotFound if the id is unknown.
	UpdatePlayer(ctx context.Context, player model.Player) error
	// RemovePlayer deletes a player by id.
	RemovePlayer(ctx context.Context, id string) error

	// Teams returns the current team partition.
	Teams(ctx context.Context) []model.Team
	// SetTeams replaces the team partition wholesale.
	SetTeams(ctx context.Context, teams []model.Team)
	// RenameTeam updates one team's display name by index.
	RenameTeam(ctx context.Context, index int, name string) error

	// Settings returns the tournament configuration.
	Settings(ctx context.Context) model.Settings
	// SetSettings replaces the tournament configuration.
	SetSettings(ctx context.Context, settings model.Settings)

	// History lists snapshots newest-first.
	History(ctx context.Context) []model.HistoryEntry
	// HistoryEntry fetches a snapshot by id.
	// Returns ErrHistoryNotFound if the id is unknown.
	HistoryEntry(ctx context.Context, id string) (model.HistoryEntry, error)
	// PushHistory prepends a snapshot, evicting the oldest beyond the limit.
	PushHistory(ctx context.Context, entry model.HistoryEntry)
	// ClearHistory drops every snapshot. Individual deletion is not offered.
	ClearHistory(ctx context.Context)

	// Reset wipes players, teams and history, keeping settings.
	Reset(ctx context.Context)
}
