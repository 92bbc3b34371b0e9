package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// DistributeByRulesWithDeficits tops up teams that already hold players, used
// by the fill-remaining flow. For each required category it computes every
// team's deficit (required minus current count of that skill) and assigns in
// priority rounds: round 0 gives one player to every team with any deficit,
// round 1 to every team still short by more than one, and so on, stopping
// early when a round places nobody. Teams with the largest shortfall are
// topped up first without starving the rest.
//
// Unlike DistributeByRules, every placement here respects teamSize; leftover
// players go round-robin only to teams with spare capacity.
func DistributeByRulesWithDeficits(teams []model.Team, rules map[string]int, groups SkillGroups, teamSize int) {
	if len(teams) == 0 || teamSize < 1 {
		return
	}

	for _, categoryID := range sortedRuleKeys(rules) {
		required := rules[categoryID]
		pool := groups[GroupKey(categoryID)]
		if required <= 0 || len(pool) == 0 {
			continue
		}

		deficits := make([]int, len(teams))
		for i, team := range teams {
			current := 0
			for _, p := range team.Players {
				if p.SkillLevel == categoryID {
					current++
				}
			}
			if d := required - current; d > 0 {
				deficits[i] = d
			}
		}

		for round := 0; round < required && len(pool) > 0; round++ {
			assigned := false
			for i := range teams {
				if len(pool) == 0 {
					break
				}
				if deficits[i] > round && len(teams[i].Players) < teamSize {
					place(teams, i, pool[0])
					pool = pool[1:]
					assigned = true
				}
			}
			if !assigned {
				break
			}
		}

		groups[GroupKey(categoryID)] = pool
	}

	for i, player := range groups.drain() {
		withSpace := teamsWithSpace(teams, teamSize)
		if len(withSpace) == 0 {
			break
		}
		target := withSpace[i%len(withSpace)]
		if len(teams[target].Players) < teamSize {
			place(teams, target, player)
		}
	}
}

// teamsWithSpace returns the indexes of teams below the size limit.
func teamsWithSpace(teams []model.Team, teamSize int) []int {
	var idx []int
	for i := range teams {
		if len(teams[i].Players) < teamSize {
			idx = append(idx, i)
		}
	}
	return idx
}
