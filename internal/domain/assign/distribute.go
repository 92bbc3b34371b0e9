package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// DistributeByRules fills empty teams from the grouped pools according to the
// composition rules: each category with a required count is dealt to teams in
// order, first-come-first-served from the shuffled pool, so earlier teams get
// priority when a pool runs short. Whatever remains afterwards is appended to
// whichever team currently has the fewest players, irrespective of skill.
//
// The min-fill fallback deliberately carries no capacity check; overfilled
// teams surface through the composition validator instead.
func DistributeByRules(teams []model.Team, rules map[string]int, groups SkillGroups) {
	if len(teams) == 0 {
		return
	}

	for _, categoryID := range sortedRuleKeys(rules) {
		required := rules[categoryID]
		pool, ok := groups[GroupKey(categoryID)]
		if required <= 0 || !ok {
			continue
		}
		for teamIndex := range teams {
			for i := 0; i < required && len(pool) > 0; i++ {
				place(teams, teamIndex, pool[0])
				pool = pool[1:]
			}
		}
		groups[GroupKey(categoryID)] = pool
	}

	for _, player := range groups.drain() {
		place(teams, minFillIndex(teams), player)
	}
}

// DistributeEvenly spreads each skill pool round-robin across the teams by
// pool-local index. Pools are not interleaved globally; the unassigned bucket
// and every category bucket each wrap around the teams independently, which
// keeps skills spread out without any quota bookkeeping.
func DistributeEvenly(teams []model.Team, groups SkillGroups) {
	if len(teams) == 0 {
		return
	}

	for _, key := range groups.orderedKeys() {
		for i, player := range groups[key] {
			place(teams, i%len(teams), player)
		}
		groups[key] = nil
	}
}
