// Package model contains domain models passed between layers.
package model

import "time"

// Player is a tournament participant. TeamID is the index of the team the
// player currently belongs to, or nil while unassigned. A reserve player's
// TeamID is always nil.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Locked     bool   `json:"locked"`
	TeamID     *int   `json:"teamId"`
	SkillLevel string `json:"skillLevel,omitempty"`
	IsReserve  bool   `json:"isReserve,omitempty"`
}

// SkillCategory is a named, colored bucket used for composition balancing.
// The color is display-only and never affects assignment logic.
type SkillCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Team holds a snapshot of its members taken at assignment time. The Players
// list is a copy, not a live reference; after every assignment mutation the
// canonical player collection and the team snapshots are re-synced.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// CompositionRules maps a skill category id to the required number of players
// of that category per team. A zero or absent entry means no requirement.
type CompositionRules map[string]int

// Settings holds the tournament configuration the engine is driven by.
type Settings struct {
	EventName             string           `json:"eventName"`
	OrganizerName         string           `json:"organizerName"`
	TeamSize              int              `json:"teamSize"`
	MaxTeams              int              `json:"maxTeams"`
	ReservePlayersEnabled bool             `json:"reservePlayersEnabled"`
	SkillBalancingEnabled bool             `json:"skillBalancingEnabled"`
	SkillCategories       []SkillCategory  `json:"skillCategories"`
	CompositionRules      CompositionRules `json:"teamCompositionRules"`
	TeamNamingCategoryID  string           `json:"teamNamingCategoryId,omitempty"`
}

// HistoryEntry is an immutable snapshot of a completed assignment. It is
// created once per randomization or fill operation and never mutated.
type HistoryEntry struct {
	ID                    string           `json:"id"`
	Timestamp             time.Time        `json:"timestamp"`
	Players               []Player         `json:"players"`
	Teams                 []Team           `json:"teams"`
	EventName             string           `json:"eventName"`
	OrganizerName         string           `json:"organizerName"`
	TeamSize              int              `json:"teamSize,omitempty"`
	MaxTeams              int              `json:"maxTeams,omitempty"`
	ReservePlayersEnabled bool             `json:"reservePlayersEnabled,omitempty"`
	SkillBalancingEnabled bool             `json:"skillBalancingEnabled,omitempty"`
	SkillCategories       []SkillCategory  `json:"skillCategories,omitempty"`
	CompositionRules      CompositionRules `json:"teamCompositionRules,omitempty"`
}

// PlayerPatch carries the mutable player fields; nil means "leave as is".
type PlayerPatch struct {
	Name       *string `json:"name,omitempty"`
	Locked     *bool   `json:"locked,omitempty"`
	IsReserve  *bool   `json:"isReserve,omitempty"`
	SkillLevel *string `json:"skillLevel,omitempty"`
}

// TeamRef returns a pointer to a copy of idx, for assigning Player.TeamID.
func TeamRef(idx int) *int {
	return &idx
}

// ClonePlayers returns a deep copy of players. TeamID pointers are
// re-allocated so the copy shares no memory with the input.
func ClonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p
		if p.TeamID != nil {
			out[i].TeamID = TeamRef(*p.TeamID)
		}
	}
	return out
}

// CloneTeams returns a deep copy of teams, including each team's player
// snapshot list.
func CloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t
		out[i].Players = ClonePlayers(t.Players)
	}
	return out
}

// CloneRules returns a copy of the rules map.
func CloneRules(rules CompositionRules) CompositionRules {
	if rules == nil {
		return nil
	}
	out := make(CompositionRules, len(rules))
	for k, v := range rules {
		out[k] = v
	}
	return out
}

// CloneCategories returns a copy of the category list.
func CloneCategories(cats []SkillCategory) []SkillCategory {
	if cats == nil {
		return nil
	}
	out := make([]SkillCategory, len(cats))
	copy(out, cats)
	return out
}
