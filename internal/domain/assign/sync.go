package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// SyncAssignments recomputes every player's team reference from the final
// team snapshots, keeping the canonical player collection and the per-team
// copies consistent. Reserve players are forced to nil regardless of any
// other state; active players not present on any team come back unassigned.
func SyncAssignments(allPlayers []model.Player, finalTeams []model.Team) []model.Player {
	teamByPlayer := make(map[string]int, len(allPlayers))
	for idx, team := range finalTeams {
		for _, p := range team.Players {
			if _, seen := teamByPlayer[p.ID]; !seen {
				teamByPlayer[p.ID] = idx
			}
		}
	}

	updated := make([]model.Player, len(allPlayers))
	for i, player := range allPlayers {
		updated[i] = player
		if player.IsReserve {
			updated[i].TeamID = nil
			continue
		}
		if idx, ok := teamByPlayer[player.ID]; ok {
			updated[i].TeamID = model.TeamRef(idx)
		} else {
			updated[i].TeamID = nil
		}
	}
	return updated
}
