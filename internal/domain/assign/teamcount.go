package assign

// OptimalTeamCount computes how many teams to create for the given number of
// active (non-reserve) players. maxTeams of 0 means no limit. A requested cap
// is honored only if it does not strand players: when the cap exceeds the
// minimum number of teams needed it is silently reduced, and the returned
// bool tells the caller this happened so it can surface a non-fatal notice.
func OptimalTeamCount(activePlayerCount, teamSize, maxTeams int) (int, bool) {
	if activePlayerCount < 1 || teamSize < 1 {
		return 0, false
	}

	minTeamsNeeded := (activePlayerCount + teamSize - 1) / teamSize

	if maxTeams > 0 {
		if maxTeams > minTeamsNeeded {
			return minTeamsNeeded, true
		}
		return maxTeams, false
	}

	return minTeamsNeeded, false
}

// AdjustTeamCountForRules lowers the team count to what the scarcest skill
// category can sustain: you cannot form more teams than you have players to
// satisfy the strictest per-team quota. Only active when composition rules
// exist and a max-team cap is set; never raises the count, never returns
// less than 1.
func AdjustTeamCountForRules(rules map[string]int, groups SkillGroups, currentTeamCount, maxTeams int) int {
	if len(rules) == 0 || maxTeams == 0 {
		return currentTeamCount
	}

	scarcest := -1
	for _, categoryID := range sortedRuleKeys(rules) {
		required := rules[categoryID]
		if required <= 0 {
			continue
		}
		perCategory := len(groups[GroupKey(categoryID)]) / required
		if scarcest == -1 || perCategory < scarcest {
			scarcest = perCategory
		}
	}

	if scarcest >= 0 && scarcest < currentTeamCount {
		if scarcest < 1 {
			return 1
		}
		return scarcest
	}

	return currentTeamCount
}
