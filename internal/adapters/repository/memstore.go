package repository

import (
	"context"
	"sync"

	"github.com/rostermix/rostermix/internal/domain/model"

	"github.com/rostermix/rostermix/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultHistoryLimit = 10
)

// MemStore implements Store with an in-memory, mutex-guarded state. The
// engine itself is synchronous, but the HTTP adapter may serve concurrent
// requests, so every access goes through the lock.
type MemStore struct {
	mu sync.RWMutex

	players  []model.Player
	teams    []model.Team
	settings model.Settings
	history  []model.HistoryEntry

	historyLimit int
}

// NewMemStore creates an empty in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		historyLimit: defaultHistoryLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Players returns the canonical player collection.
func (s *MemStore) Players(_ context.Context) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ClonePlayers(s.players)
}

// SetPlayers replaces the player collection wholesale.
func (s *MemStore) SetPlayers(_ context.Context, players []model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = model.ClonePlayers(players)
	s.updateGaugesLocked()
}

// AddPlayer appends a player.
func (s *MemStore) AddPlayer(_ context.Context, player model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append(s.players, player)
	s.updateGaugesLocked()
}

// UpdatePlayer replaces the player with the same id.
func (s *MemStore) UpdatePlayer(_ context.Context, player model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.players {
		if s.players[i].ID == player.ID {
			s.players[i] = player
			return nil
		}
	}
	return ErrPlayerNotFound
}

// RemovePlayer deletes a player by id.
func (s *MemStore) RemovePlayer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.players {
		if s.players[i].ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			s.updateGaugesLocked()
			return nil
		}
	}
	return ErrPlayerNotFound
}

// Teams returns the current team partition.
func (s *MemStore) Teams(_ context.Context) []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneTeams(s.teams)
}

// SetTeams replaces the team partition wholesale.
func (s *MemStore) SetTeams(_ context.Context, teams []model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = model.CloneTeams(teams)
	s.updateGaugesLocked()
}

// RenameTeam updates one team's display name by index.
func (s *MemStore) RenameTeam(_ context.Context, index int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.teams) {
		return ErrTeamNotFound
	}
	s.teams[index].Name = name
	return nil
}

// Settings returns the tournament configuration.
func (s *MemStore) Settings(_ context.Context) model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := s.settings
	settings.SkillCategories = model.CloneCategories(s.settings.SkillCategories)
	settings.CompositionRules = model.CloneRules(s.settings.CompositionRules)
	return settings
}

// SetSettings replaces the tournament configuration.
func (s *MemStore) SetSettings(_ context.Context, settings model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.SkillCategories = model.CloneCategories(settings.SkillCategories)
	settings.CompositionRules = model.CloneRules(settings.CompositionRules)
	s.settings = settings
}

// History lists snapshots newest-first.
func (s *MemStore) History(_ context.Context) []model.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.HistoryEntry, len(s.history))
	for i, e := range s.history {
		out[i] = cloneEntry(e)
	}
	return out
}

// HistoryEntry fetches a snapshot by id.
func (s *MemStore) HistoryEntry(_ context.Context, id string) (model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.history {
		if e.ID == id {
			return cloneEntry(e), nil
		}
	}
	return model.HistoryEntry{}, ErrHistoryNotFound
}

// PushHistory prepends a snapshot, evicting the oldest beyond the limit.
func (s *MemStore) PushHistory(_ context.Context, entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]model.HistoryEntry{cloneEntry(entry)}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
	s.updateGaugesLocked()
}

// ClearHistory drops every snapshot.
func (s *MemStore) ClearHistory(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.updateGaugesLocked()
}

// Reset wipes players, teams and history, keeping settings.
func (s *MemStore) Reset(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.teams = nil
	s.history = nil
	s.updateGaugesLocked()
}

func (s *MemStore) updateGaugesLocked() {
	reserves := 0
	for _, p := range s.players {
		if p.IsReserve {
			reserves++
		}
	}
	metrics.UpdatePlayerCount(len(s.players))
	metrics.UpdateReserveCount(reserves)
	metrics.UpdateTeamCount(len(s.teams))
	metrics.UpdateHistorySize(len(s.history))
}

func cloneEntry(e model.HistoryEntry) model.HistoryEntry {
	out := e
	out.Players = model.ClonePlayers(e.Players)
	out.Teams = model.CloneTeams(e.Teams)
	out.SkillCategories = model.CloneCategories(e.SkillCategories)
	out.CompositionRules = model.CloneRules(e.CompositionRules)
	return out
}
