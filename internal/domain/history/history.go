// Package history snapshots completed assignments for later restoration.
package history

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// Recorder builds immutable history entries. The clock is injected so tests
// can pin timestamps; production uses the real clock.
type Recorder struct {
	clock clockwork.Clock
}

// Option applies a configuration option to the Recorder.
type Option func(*Recorder)

// WithClock replaces the wall clock, typically with a clockwork.FakeClock.
func WithClock(clock clockwork.Clock) Option {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRecorder creates a Recorder using the real clock by default.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		clock: clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Snapshot captures a completed assignment. Players and teams are deep-copied
// so the entry shares nothing with live state and can never be mutated
// through it; relevant settings are frozen alongside for exact restoration.
func (r *Recorder) Snapshot(players []model.Player, teams []model.Team, settings model.Settings) model.HistoryEntry {
	return model.HistoryEntry{
		ID:                    uuid.NewString(),
		Timestamp:             r.clock.Now().UTC(),
		Players:               model.ClonePlayers(players),
		Teams:                 model.CloneTeams(teams),
		EventName:             settings.EventName,
		OrganizerName:         settings.OrganizerName,
		TeamSize:              settings.TeamSize,
		MaxTeams:              settings.MaxTeams,
		ReservePlayersEnabled: settings.ReservePlayersEnabled,
		SkillBalancingEnabled: settings.SkillBalancingEnabled,
		SkillCategories:       model.CloneCategories(settings.SkillCategories),
		CompositionRules:      model.CloneRules(settings.CompositionRules),
	}
}
