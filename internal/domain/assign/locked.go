package assign

import (
	"github.com/rostermix/rostermix/internal/domain/model"
)

// AttachLocked re-inserts pinned players after a distribution pass. A locked
// player whose recorded team index is still valid lands on that team as-is;
// anything else defaults to team 0. Capacity is deliberately not checked:
// a lock is a hard pin that may legitimately overflow a team.
func AttachLocked(teams []model.Team, lockedPlayers []model.Player) {
	if len(teams) == 0 {
		return
	}

	for _, player := range lockedPlayers {
		if player.TeamID != nil && *player.TeamID >= 0 && *player.TeamID < len(teams) {
			idx := *player.TeamID
			teams[idx].Players = append(teams[idx].Players, player)
			continue
		}
		place(teams, 0, player)
	}
}

// AttachLockedCapped is the fill-remaining variant of AttachLocked: it honors
// the team size limit, falling back to the first team with capacity when the
// pinned team is full, and drops the player when every team is full.
func AttachLockedCapped(teams []model.Team, lockedPlayers []model.Player, teamSize int) {
	if len(teams) == 0 || teamSize < 1 {
		return
	}

	for _, player := range lockedPlayers {
		target := 0
		if player.TeamID != nil && *player.TeamID >= 0 && *player.TeamID < len(teams) &&
			len(teams[*player.TeamID].Players) < teamSize {
			target = *player.TeamID
		} else if withSpace := teamsWithSpace(teams, teamSize); len(withSpace) > 0 {
			target = withSpace[0]
		}

		if len(teams[target].Players) < teamSize {
			place(teams, target, player)
		}
	}
}
