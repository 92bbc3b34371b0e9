// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rostermix/rostermix/internal/adapters/export"
	"github.com/rostermix/rostermix/internal/adapters/repository"
	"github.com/rostermix/rostermix/internal/domain/assign"
	"github.com/rostermix/rostermix/internal/domain/history"
	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/internal/domain/types"
	"github.com/rostermix/rostermix/internal/domain/validate"
	"github.com/rostermix/rostermix/pkg/logger"
	"github.com/rostermix/rostermix/pkg/metrics"
)

// Service owns the canonical tournament state and drives the assignment
// engine. The engine itself stays side-effect-free; all mutation funnels
// through the store held here.
type Service struct {
	store      repository.Store
	randomizer *assign.Randomizer
	recorder   *history.Recorder
	clock      clockwork.Clock
	logger     logger.Logger

	historyLimit    int
	initialSettings model.Settings
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore replaces the default in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed fixes the shuffle seed, making assignments reproducible.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.randomizer = assign.New(assign.WithSeed(seed))
	}
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithHistoryLimit bounds the randomization history.
func WithHistoryLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// WithInitialSettings seeds the tournament configuration.
func WithInitialSettings(settings model.Settings) Option {
	return func(s *Service) {
		s.initialSettings = settings
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		randomizer:   assign.New(),
		clock:        clockwork.NewRealClock(),
		historyLimit: 10,
		initialSettings: model.Settings{
			TeamSize: 2,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemStore(repository.WithHistoryLimit(s.historyLimit))
	}
	if s.recorder == nil {
		s.recorder = history.NewRecorder(history.WithClock(s.clock))
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.store.SetSettings(context.Background(), s.initialSettings)

	return s
}

// Players returns the canonical player collection.
func (s *Service) Players(ctx context.Context) []model.Player {
	return s.store.Players(ctx)
}

// AddPlayer creates a player from a display name. New players start
// unlocked, unassigned and active.
func (s *Service) AddPlayer(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, ErrInvalidSettings
	}
	player := model.Player{
		ID:   uuid.NewString(),
		Name: name,
	}
	s.store.AddPlayer(ctx, player)
	s.logger.Debug(ctx, "player added", logger.String("player", player.Name))
	return player, nil
}

// UpdatePlayer applies a patch to one player. Promoting a player to the
// reserve list detaches it from any team immediately, keeping the reserve
// invariant (TeamID always nil) intact.
func (s *Service) UpdatePlayer(ctx context.Context, id string, patch model.PlayerPatch) (model.Player, error) {
	players := s.store.Players(ctx)
	var target *model.Player
	for i := range players {
		if players[i].ID == id {
			target = &players[i]
			break
		}
	}
	if target == nil {
		return model.Player{}, repository.ErrPlayerNotFound
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		target.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Locked != nil {
		target.Locked = *patch.Locked
	}
	if patch.SkillLevel != nil {
		target.SkillLevel = *patch.SkillLevel
	}
	if patch.IsReserve != nil {
		target.IsReserve = *patch.IsReserve
		if target.IsReserve {
			target.TeamID = nil
			target.Locked = false
		}
	}

	if err := s.store.UpdatePlayer(ctx, *target); err != nil {
		return model.Player{}, err
	}
	s.rebuildTeamsFromPlayers(ctx)
	updated := *target
	return updated, nil
}

// RemovePlayer deletes a player and detaches it from any team.
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	if err := s.store.RemovePlayer(ctx, id); err != nil {
		return err
	}
	s.rebuildTeamsFromPlayers(ctx)
	return nil
}

// MovePlayer reassigns a player to the team at teamIndex; a negative index
// unassigns. Both the canonical player record and the team snapshots are
// updated, preserving the dual-bookkeeping invariant.
func (s *Service) MovePlayer(ctx context.Context, id string, teamIndex int) error {
	teams := s.store.Teams(ctx)
	if teamIndex >= len(teams) {
		return ErrInvalidTeamIndex
	}

	players := s.store.Players(ctx)
	found := false
	for i := range players {
		if players[i].ID != id {
			continue
		}
		found = true
		if players[i].IsReserve {
			return ErrInvalidSettings
		}
		if teamIndex < 0 {
			players[i].TeamID = nil
		} else {
			players[i].TeamID = model.TeamRef(teamIndex)
		}
	}
	if !found {
		return repository.ErrPlayerNotFound
	}

	s.store.SetPlayers(ctx, players)
	s.rebuildTeamsFromPlayers(ctx)
	return nil
}

// Teams returns the current team partition.
func (s *Service) Teams(ctx context.Context) []model.Team {
	return s.store.Teams(ctx)
}

// RenameTeam updates one team's display name.
func (s *Service) RenameTeam(ctx context.Context, index int, name string) error {
	return s.store.RenameTeam(ctx, index, name)
}

// Settings returns the tournament configuration.
func (s *Service) Settings(ctx context.Context) model.Settings {
	return s.store.Settings(ctx)
}

// UpdateSettings replaces the tournament configuration. Removing the last
// skill category while balancing is on is rejected; composition rules are
// advisory and accepted even when their sum exceeds the team size (the
// validator surfaces that).
func (s *Service) UpdateSettings(ctx context.Context, settings model.Settings) error {
	if settings.TeamSize < 1 {
		return ErrInvalidSettings
	}
	if settings.MaxTeams < 0 {
		return ErrInvalidSettings
	}
	if settings.SkillBalancingEnabled && len(settings.SkillCategories) == 0 {
		return ErrLastCategory
	}

	if total := ruleTotal(settings.CompositionRules); total > settings.TeamSize {
		s.logger.Warn(ctx, "composition rules exceed team size",
			logger.Int("ruleTotal", total),
			logger.Int("teamSize", settings.TeamSize),
		)
	}

	s.store.SetSettings(ctx, settings)
	return nil
}

// Randomize rebuilds the team partition from scratch: resolve team count,
// distribute (skill-balanced when enabled), re-attach locked players, apply
// naming, sync assignments, snapshot history. With no active players it is a
// silent no-op returning the current teams.
func (s *Service) Randomize(ctx context.Context) ([]model.Team, error) {
	settings := s.store.Settings(ctx)
	players := s.store.Players(ctx)

	active := activePlayers(players)
	if len(active) == 0 {
		s.logger.Debug(ctx, "randomize skipped: no active players")
		return s.store.Teams(ctx), nil
	}

	numTeams, capped := assign.OptimalTeamCount(len(active), settings.TeamSize, settings.MaxTeams)
	if capped {
		metrics.RecordCappedTeamCount()
		s.logger.Warn(ctx, "reducing team count to avoid stranding players",
			logger.Int("requested", settings.MaxTeams),
			logger.Int("resolved", numTeams),
		)
	}
	if numTeams == 0 {
		s.logger.Debug(ctx, "randomize skipped: degenerate configuration")
		return s.store.Teams(ctx), nil
	}

	var teams []model.Team
	if settings.SkillBalancingEnabled && len(settings.SkillCategories) > 0 {
		teams = s.randomizer.SkillBalanced(active, numTeams, settings.SkillCategories, settings.CompositionRules, settings.MaxTeams)
	} else {
		teams = s.randomizer.Standard(active, numTeams)
	}

	s.finalize(ctx, players, teams, settings)
	metrics.RecordRandomization()
	s.logger.Info(ctx, "teams randomized",
		logger.Int("teams", len(teams)),
		logger.Int("players", len(active)),
		logger.Bool("skillBalanced", settings.SkillBalancingEnabled),
	)
	return s.store.Teams(ctx), nil
}

// FillRemaining tops up existing teams with currently unassigned players
// using the deficit-aware strategy, leaving already placed players where
// they are. Without any existing teams it falls back to a full Randomize.
func (s *Service) FillRemaining(ctx context.Context) ([]model.Team, error) {
	teams := s.store.Teams(ctx)
	if len(teams) == 0 {
		return s.Randomize(ctx)
	}

	settings := s.store.Settings(ctx)
	players := s.store.Players(ctx)

	var pending []model.Player
	for _, p := range players {
		if !p.IsReserve && p.TeamID == nil {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		s.logger.Debug(ctx, "fill skipped: no unassigned players")
		return teams, nil
	}

	groups := s.randomizer.GroupBySkill(pending, balancingCategories(settings))
	assign.DistributeByRulesWithDeficits(teams, settings.CompositionRules, groups, settings.TeamSize)

	var locked []model.Player
	for _, p := range pending {
		if p.Locked {
			locked = append(locked, p)
		}
	}
	assign.AttachLockedCapped(teams, locked, settings.TeamSize)

	s.finalize(ctx, players, teams, settings)
	metrics.RecordFillOperation()
	s.logger.Info(ctx, "remaining players filled in",
		logger.Int("pending", len(pending)),
		logger.Int("teams", len(teams)),
	)
	return s.store.Teams(ctx), nil
}

// ValidateTeam reports the composition verdict for the team at index.
func (s *Service) ValidateTeam(ctx context.Context, index int) (types.TeamValidation, error) {
	teams := s.store.Teams(ctx)
	if index < 0 || index >= len(teams) {
		return types.TeamValidation{}, ErrInvalidTeamIndex
	}
	settings := s.store.Settings(ctx)
	verdict := validate.TeamComposition(teams[index], s.store.Players(ctx), settings.SkillCategories, settings.CompositionRules, settings.SkillBalancingEnabled)
	if !verdict.IsValid {
		metrics.RecordValidationFailure()
	}
	return verdict, nil
}

// History lists stored snapshots, newest first.
func (s *Service) History(ctx context.Context) []model.HistoryEntry {
	return s.store.History(ctx)
}

// RestoreHistory replaces live players and teams with a snapshot's deep
// copies, along with the settings frozen at capture time.
func (s *Service) RestoreHistory(ctx context.Context, id string) error {
	entry, err := s.store.HistoryEntry(ctx, id)
	if err != nil {
		return err
	}

	s.store.SetPlayers(ctx, entry.Players)
	s.store.SetTeams(ctx, entry.Teams)

	settings := s.store.Settings(ctx)
	settings.EventName = entry.EventName
	settings.OrganizerName = entry.OrganizerName
	if entry.TeamSize > 0 {
		settings.TeamSize = entry.TeamSize
		settings.MaxTeams = entry.MaxTeams
		settings.ReservePlayersEnabled = entry.ReservePlayersEnabled
		settings.SkillBalancingEnabled = entry.SkillBalancingEnabled
		settings.SkillCategories = entry.SkillCategories
		settings.CompositionRules = entry.CompositionRules
	}
	s.store.SetSettings(ctx, settings)

	metrics.RecordHistoryRestore()
	s.logger.Info(ctx, "history entry restored", logger.String("entry", id))
	return nil
}

// ClearHistory drops all snapshots.
func (s *Service) ClearHistory(ctx context.Context) {
	s.store.ClearHistory(ctx)
}

// Export renders the current configuration as a versioned JSON document.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	doc := export.NewDocument(s.store.Players(ctx), s.store.Teams(ctx), s.store.Settings(ctx), s.clock.Now())
	return doc.Marshal()
}

// Import replaces the configuration from an export document. The boolean
// reports success; on failure the prior state is left untouched.
func (s *Service) Import(ctx context.Context, data []byte) bool {
	doc, err := export.Parse(data)
	if err != nil {
		metrics.RecordImportFailure()
		s.logger.Warn(ctx, "import rejected", logger.Error(err))
		return false
	}

	settings := s.store.Settings(ctx)
	settings.EventName = doc.EventName
	settings.OrganizerName = doc.OrganizerName
	if doc.TeamSize > 0 {
		settings.TeamSize = doc.TeamSize
	}
	s.store.SetSettings(ctx, settings)
	s.store.SetPlayers(ctx, doc.Players)
	s.store.SetTeams(ctx, doc.Teams)

	s.logger.Info(ctx, "configuration imported",
		logger.Int("players", len(doc.Players)),
		logger.Int("teams", len(doc.Teams)),
	)
	return true
}

// ShareLink encodes the current event into a URL-fragment payload.
func (s *Service) ShareLink(ctx context.Context) (string, error) {
	settings := s.store.Settings(ctx)

	payload := export.SharePayload{
		EventName:      settings.EventName,
		OrganizerName:  settings.OrganizerName,
		SkillBalancing: settings.SkillBalancingEnabled,
		Timestamp:      s.clock.Now().UnixMilli(),
	}

	for _, team := range s.store.Teams(ctx) {
		st := export.ShareTeam{Name: team.Name, Players: []export.SharePlayer{}}
		for _, p := range team.Players {
			st.Players = append(st.Players, export.SharePlayer{Name: p.Name, Skill: p.SkillLevel})
		}
		payload.Teams = append(payload.Teams, st)
	}

	if settings.SkillBalancingEnabled {
		for _, c := range settings.SkillCategories {
			payload.Categories = append(payload.Categories, export.ShareCategory{ID: c.ID, Name: c.Name, Color: c.Color})
		}
	}

	return export.EncodeShare(payload)
}

// DecodeShareLink decodes a share fragment produced by ShareLink.
func (s *Service) DecodeShareLink(_ context.Context, encoded string) (export.SharePayload, error) {
	return export.DecodeShare(encoded)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	ctx := context.Background()
	players := s.store.Players(ctx)

	reserves := 0
	locked := 0
	for _, p := range players {
		if p.IsReserve {
			reserves++
		}
		if p.Locked {
			locked++
		}
	}

	return map[string]any{
		"players":        len(players),
		"reservePlayers": reserves,
		"lockedPlayers":  locked,
		"teams":          len(s.store.Teams(ctx)),
		"historyEntries": len(s.store.History(ctx)),
	}
}

// finalize runs the shared tail of every assignment flow: naming, sync,
// store write-back, history snapshot.
func (s *Service) finalize(ctx context.Context, players []model.Player, teams []model.Team, settings model.Settings) {
	teams = assign.ApplyNaming(teams, settings.TeamNamingCategoryID, players)
	updated := assign.SyncAssignments(players, teams)

	s.store.SetPlayers(ctx, updated)
	s.store.SetTeams(ctx, teams)
	s.store.PushHistory(ctx, s.recorder.Snapshot(updated, teams, settings))
}

// rebuildTeamsFromPlayers regenerates every team's player snapshot from the
// canonical player records, after a manual roster edit.
func (s *Service) rebuildTeamsFromPlayers(ctx context.Context) {
	teams := s.store.Teams(ctx)
	if len(teams) == 0 {
		return
	}

	for i := range teams {
		teams[i].Players = []model.Player{}
	}
	for _, p := range s.store.Players(ctx) {
		if p.IsReserve || p.TeamID == nil {
			continue
		}
		if idx := *p.TeamID; idx >= 0 && idx < len(teams) {
			teams[idx].Players = append(teams[idx].Players, p)
		}
	}

	s.store.SetTeams(ctx, teams)
}

func activePlayers(players []model.Player) []model.Player {
	var active []model.Player
	for _, p := range players {
		if !p.IsReserve {
			active = append(active, p)
		}
	}
	return active
}

func balancingCategories(settings model.Settings) []model.SkillCategory {
	if !settings.SkillBalancingEnabled {
		return nil
	}
	return settings.SkillCategories
}

func ruleTotal(rules model.CompositionRules) int {
	total := 0
	for _, n := range rules {
		total += n
	}
	return total
}
