package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// ApplyNaming renames each team after the first player on it whose skill
// level matches the naming category, looked up in the canonical player list.
// Teams without such a player keep their default 1-based name. Membership is
// never touched; an empty naming category returns the input unchanged.
func ApplyNaming(teams []model.Team, namingCategoryID string, allPlayers []model.Player) []model.Team {
	if namingCategoryID == "" {
		return teams
	}

	skillByID := make(map[string]string, len(allPlayers))
	for _, p := range allPlayers {
		skillByID[p.ID] = p.SkillLevel
	}

	named := make([]model.Team, len(teams))
	for i, team := range teams {
		named[i] = team
		named[i].Name = defaultTeamName(i)
		for _, p := range team.Players {
			if skillByID[p.ID] == namingCategoryID {
				named[i].Name = "Team " + p.Name
				break
			}
		}
	}
	return named
}
