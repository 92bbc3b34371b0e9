package assign

import (
	"sort"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// GroupKey identifies a skill bucket: either a skill category id or the
// Unassigned sentinel for players without a skill level.
type GroupKey string

// Unassigned collects players that carry no skill level (or one that no
// longer matches any category, so they are never stranded).
const Unassigned GroupKey = "unassigned"

// SkillGroups maps each bucket to the shuffled players available for
// distribution. The distribution strategies consume these pools in place.
type SkillGroups map[GroupKey][]model.Player

// GroupBySkill partitions eligible players into per-category buckets plus the
// Unassigned bucket, each bucket independently shuffled. Locked players are
// excluded entirely; they are re-attached after distribution.
func (r *Randomizer) GroupBySkill(players []model.Player, categories []model.SkillCategory) SkillGroups {
	groups := make(SkillGroups, len(categories)+1)

	known := make(map[string]bool, len(categories))
	for _, category := range categories {
		known[category.ID] = true
		bucket := make([]model.Player, 0)
		for _, p := range players {
			if p.SkillLevel == category.ID && !p.Locked {
				bucket = append(bucket, p)
			}
		}
		r.shuffle(bucket)
		groups[GroupKey(category.ID)] = bucket
	}

	unassigned := make([]model.Player, 0)
	for _, p := range players {
		if !p.Locked && (p.SkillLevel == "" || !known[p.SkillLevel]) {
			unassigned = append(unassigned, p)
		}
	}
	r.shuffle(unassigned)
	groups[Unassigned] = unassigned

	return groups
}

// shuffle reorders players uniformly using the injected random source.
func (r *Randomizer) shuffle(players []model.Player) {
	r.rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}

// orderedKeys returns the group keys in a stable order: category ids sorted,
// Unassigned last. Map iteration order must not leak into assignment results
// when the caller fixed the shuffle seed.
func (g SkillGroups) orderedKeys() []GroupKey {
	keys := make([]GroupKey, 0, len(g))
	for k := range g {
		if k != Unassigned {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	if _, ok := g[Unassigned]; ok {
		keys = append(keys, Unassigned)
	}
	return keys
}

// drain removes and returns every remaining player, in stable key order.
func (g SkillGroups) drain() []model.Player {
	var remaining []model.Player
	for _, key := range g.orderedKeys() {
		remaining = append(remaining, g[key]...)
		g[key] = nil
	}
	return remaining
}

// sortedRuleKeys returns rule category ids in a stable order.
func sortedRuleKeys(rules map[string]int) []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
