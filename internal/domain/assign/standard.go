package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// Standard performs randomization without skill balancing: locked players are
// pinned first, then every unlocked active player is shuffled and greedily
// assigned to the team with the fewest players.
func (r *Randomizer) Standard(activePlayers []model.Player, numTeams int) []model.Team {
	teams := NewEmptyTeams(numTeams)
	if len(teams) == 0 {
		return teams
	}

	var unlocked []model.Player
	var locked []model.Player
	for _, p := range activePlayers {
		if p.Locked {
			locked = append(locked, p)
		} else {
			unlocked = append(unlocked, p)
		}
	}

	AttachLocked(teams, locked)

	shuffled := make([]model.Player, len(unlocked))
	copy(shuffled, unlocked)
	r.shuffle(shuffled)

	for _, player := range shuffled {
		place(teams, minFillIndex(teams), player)
	}

	return teams
}

// SkillBalanced performs skill-balanced randomization: players are grouped by
// skill level, the team count is lowered to what the scarcest required
// category can sustain, and players are distributed by composition rules when
// any exist or evenly otherwise. Locked players are re-attached last.
func (r *Randomizer) SkillBalanced(activePlayers []model.Player, numTeams int, categories []model.SkillCategory, rules model.CompositionRules, maxTeams int) []model.Team {
	groups := r.GroupBySkill(activePlayers, categories)

	adjusted := AdjustTeamCountForRules(rules, groups, numTeams, maxTeams)

	teams := NewEmptyTeams(adjusted)
	if len(teams) == 0 {
		return teams
	}

	if len(rules) > 0 {
		DistributeByRules(teams, rules, groups)
	} else {
		DistributeEvenly(teams, groups)
	}

	var locked []model.Player
	for _, p := range activePlayers {
		if p.Locked {
			locked = append(locked, p)
		}
	}
	AttachLocked(teams, locked)

	return teams
}
