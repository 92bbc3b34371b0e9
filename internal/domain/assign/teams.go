package assign

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// NewEmptyTeams allocates numTeams empty teams with unique ids and default
// 1-based names ("Team 1", "Team 2", ...).
func NewEmptyTeams(numTeams int) []model.Team {
	if numTeams < 1 {
		return nil
	}
	teams := make([]model.Team, numTeams)
	for i := range teams {
		teams[i] = model.Team{
			ID:      uuid.NewString(),
			Name:    defaultTeamName(i),
			Players: []model.Player{},
		}
	}
	return teams
}

func defaultTeamName(index int) string {
	return fmt.Sprintf("Team %d", index+1)
}

// minFillIndex returns the index of the team with the fewest players, ties
// broken by the lowest index.
func minFillIndex(teams []model.Team) int {
	minIdx := 0
	for i := 1; i < len(teams); i++ {
		if len(teams[i].Players) < len(teams[minIdx].Players) {
			minIdx = i
		}
	}
	return minIdx
}

// place appends a snapshot of player to teams[idx] with its team reference
// pointing at idx.
func place(teams []model.Team, idx int, player model.Player) {
	player.TeamID = model.TeamRef(idx)
	teams[idx].Players = append(teams[idx].Players, player)
}
