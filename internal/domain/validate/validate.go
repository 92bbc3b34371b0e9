// Package validate checks finished teams against the active composition
// rules. It is read-only: verdicts are derived on demand and never stored.
package validate

import (
	"fmt"
	"sort"

	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/internal/domain/types"
)

// TeamComposition reports per-category surplus/deficit for one team and an
// overall verdict. The result is immediately valid when skill balancing is
// off or no rules exist. A team can violate several rules at once, short on
// one category and over on another.
func TeamComposition(team model.Team, players []model.Player, categories []model.SkillCategory, rules model.CompositionRules, balancingEnabled bool) types.TeamValidation {
	result := types.TeamValidation{
		IsValid:           true,
		Violations:        []string{},
		SkillDistribution: map[string]types.SkillCount{},
	}

	if !balancingEnabled || len(rules) == 0 {
		return result
	}

	skillByID := make(map[string]string, len(players))
	for _, p := range players {
		skillByID[p.ID] = p.SkillLevel
	}

	nameByCategory := make(map[string]string, len(categories))
	for _, c := range categories {
		nameByCategory[c.ID] = c.Name
	}

	for _, categoryID := range sortedKeys(rules) {
		required := rules[categoryID]
		if required <= 0 {
			continue
		}

		actual := 0
		for _, p := range team.Players {
			if skillByID[p.ID] == categoryID {
				actual++
			}
		}

		categoryName := nameByCategory[categoryID]
		if categoryName == "" {
			categoryName = categoryID
		}

		result.SkillDistribution[categoryID] = types.SkillCount{
			Actual:       actual,
			Required:     required,
			CategoryName: categoryName,
		}

		switch {
		case actual < required:
			result.Violations = append(result.Violations,
				fmt.Sprintf("Needs %d more %s player(s)", required-actual, categoryName))
			result.IsValid = false
		case actual > required:
			result.Violations = append(result.Violations,
				fmt.Sprintf("Has %d too many %s player(s)", actual-required, categoryName))
			result.IsValid = false
		}
	}

	return result
}

func sortedKeys(rules model.CompositionRules) []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
