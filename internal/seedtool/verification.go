package seedtool

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rostermix/rostermix/pkg/logger"
)

// verifyPartition checks the invariants of the produced team partition:
// every active player placed exactly once, team sizes within one of each
// other (without a cap), and composition validations surfaced.
func verifyPartition(ctx context.Context, config *Config, client *HTTPClient, generated []generatedPlayer, teams []wireTeam, stats *Stats) error {
	logger.Get().Info(ctx, "verifying partition")

	if len(teams) == 0 {
		return fmt.Errorf("no teams to verify")
	}

	if err := verifyConservation(generated, teams); err != nil {
		return err
	}

	if config.MaxTeams == 0 {
		if err := verifyBalance(teams); err != nil {
			logger.Get().Warn(ctx, "size balance warning", logger.Error(err))
		} else {
			logger.Get().Info(ctx, "team sizes balanced")
		}
	}

	for i := range teams {
		verdict, err := fetchValidation(ctx, config, client, i)
		if err != nil {
			return fmt.Errorf("validation fetch for team %d failed: %w", i, err)
		}
		if !verdict.IsValid {
			stats.InvalidTeams++
			if config.Verbose {
				logger.Get().Info(ctx, "team has composition violations",
					logger.String("team", teams[i].Name),
					logger.Any("violations", verdict.Violations))
			}
		}
	}

	logger.Get().Info(ctx, "partition verification completed",
		logger.Int("teams", len(teams)),
		logger.Int("invalidTeams", stats.InvalidTeams))
	return nil
}

// verifyConservation checks that each assigned player appears exactly once
// and that no more players are placed than were activated.
func verifyConservation(generated []generatedPlayer, teams []wireTeam) error {
	active := 0
	for _, p := range generated {
		if !p.IsReserve {
			active++
		}
	}

	seen := make(map[string]string, active)
	placed := 0
	for _, team := range teams {
		for _, p := range team.Players {
			if prev, ok := seen[p.ID]; ok {
				return fmt.Errorf("player %s appears in both %s and %s", p.Name, prev, team.Name)
			}
			seen[p.ID] = team.Name
			if p.IsReserve {
				return fmt.Errorf("reserve player %s was assigned to %s", p.Name, team.Name)
			}
			placed++
		}
	}

	if placed > active {
		return fmt.Errorf("placed %d players but only %d are active", placed, active)
	}
	return nil
}

// verifyBalance checks that team sizes differ by at most one.
func verifyBalance(teams []wireTeam) error {
	smallest, largest := len(teams[0].Players), len(teams[0].Players)
	for _, team := range teams[1:] {
		if n := len(team.Players); n < smallest {
			smallest = n
		} else if n > largest {
			largest = n
		}
	}
	if largest-smallest > 1 {
		return fmt.Errorf("team sizes range from %d to %d", smallest, largest)
	}
	return nil
}

// fetchValidation retrieves the composition verdict for one team.
func fetchValidation(ctx context.Context, config *Config, client *HTTPClient, index int) (wireValidation, error) {
	var verdict wireValidation

	resp, err := client.Get(ctx, config.BaseURL+"/teams/"+strconv.Itoa(index)+"/validation")
	if err != nil {
		return verdict, err
	}
	if resp.StatusCode != 200 {
		_, _ = readResponseBody(resp)
		return verdict, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := decodeResponse(resp, &verdict); err != nil {
		return verdict, err
	}
	return verdict, nil
}
