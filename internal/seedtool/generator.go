package seedtool

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/rostermix/rostermix/pkg/logger"
)

// Default skill categories configured when balancing is enabled. The ids
// double as the skill levels stamped onto generated players.
var defaultCategories = []wireCategory{
	{ID: "beginner", Name: "Beginner", Color: "#4ade80"},
	{ID: "intermediate", Name: "Intermediate", Color: "#facc15"},
	{ID: "expert", Name: "Expert", Color: "#f87171"},
}

// Skill distribution weights out of 100. Most rosters skew intermediate.
const (
	beginnerWeight     = 30
	intermediateWeight = 50
	percentDivisor     = 100
)

var firstNames = []string{
	"Alex", "Bella", "Casey", "Dana", "Eli", "Fiona", "Gus", "Hana",
	"Ivan", "Jo", "Kira", "Leo", "Mona", "Nils", "Omar", "Pia",
	"Quinn", "Rosa", "Sam", "Tess", "Uma", "Vik", "Wren", "Yara", "Zane",
}

var lastNames = []string{
	"Adams", "Berg", "Cruz", "Diaz", "Engel", "Fox", "Gray", "Holt",
	"Ito", "Jung", "Kim", "Lund", "Mora", "Ng", "Ortiz", "Park",
	"Quist", "Ruiz", "Silva", "Tran", "Usman", "Vega", "Wolf", "Yu", "Zorn",
}

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

type generatedPlayer struct {
	Name       string
	SkillLevel string
	IsReserve  bool
}

// generatePlayers creates the roster to seed. Names get a numeric suffix so
// duplicates never collide even on large runs.
func generatePlayers(ctx context.Context, config *Config, stats *Stats) []generatedPlayer {
	logger.Get().Info(ctx, "generating players", logger.Int("numPlayers", config.NumPlayers))

	players := make([]generatedPlayer, config.NumPlayers)
	for i := range players {
		name := firstNames[randomInt(len(firstNames))] + " " +
			lastNames[randomInt(len(lastNames))] + " " +
			strconv.Itoa(i+1)

		p := generatedPlayer{Name: name}
		if config.Balanced {
			p.SkillLevel = pickSkillLevel()
		}
		if config.ReserveRate > 0 && randomInt(percentDivisor) < config.ReserveRate {
			p.IsReserve = true
		}
		players[i] = p
	}

	stats.PlayersGenerated = len(players)
	logger.Get().Info(ctx, "generated players successfully", logger.Int("count", len(players)))
	return players
}

// pickSkillLevel draws a skill level from the weighted distribution.
func pickSkillLevel() string {
	switch roll := randomInt(percentDivisor); {
	case roll < beginnerWeight:
		return defaultCategories[0].ID
	case roll < beginnerWeight+intermediateWeight:
		return defaultCategories[1].ID
	default:
		return defaultCategories[2].ID
	}
}
