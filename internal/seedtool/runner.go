package seedtool

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rostermix/rostermix/pkg/logger"
)

// Run executes the complete seeding flow: configure the event, push a
// generated roster through the API, randomize, then verify the partition.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting roster seed run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("players", config.NumPlayers),
		logger.Int("teamSize", config.TeamSize),
		logger.Int("maxTeams", config.MaxTeams),
		logger.Bool("balanced", config.Balanced),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, config, client); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if err := applySettings(ctx, config, client); err != nil {
		return fmt.Errorf("settings update failed: %w", err)
	}

	players := generatePlayers(ctx, config, stats)

	if err := submitPlayers(ctx, config, client, players, stats); err != nil {
		return fmt.Errorf("player submission failed: %w", err)
	}

	teams, err := randomizeTeams(ctx, config, client)
	if err != nil {
		return fmt.Errorf("randomization failed: %w", err)
	}
	stats.TeamsCreated = len(teams)

	if err := verifyPartition(ctx, config, client, players, teams, stats); err != nil {
		return fmt.Errorf("partition verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	logger.Get().Info(ctx, "seed run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config, client *HTTPClient) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	_, _ = readResponseBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// applySettings pushes the event configuration for this run.
func applySettings(ctx context.Context, config *Config, client *HTTPClient) error {
	settings := wireSettings{
		EventName:             "Seed Run",
		OrganizerName:         "seed-roster",
		TeamSize:              config.TeamSize,
		MaxTeams:              config.MaxTeams,
		ReservePlayersEnabled: config.ReserveRate > 0,
		CompositionRules:      map[string]int{},
	}
	if config.Balanced {
		settings.SkillBalancingEnabled = true
		settings.SkillCategories = defaultCategories
	}

	resp, err := client.Put(ctx, config.BaseURL+"/settings", settings)
	if err != nil {
		return err
	}
	_, _ = readResponseBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("settings update failed with status: %d", resp.StatusCode)
	}
	return nil
}

// randomizeTeams triggers a randomization and returns the resulting teams.
func randomizeTeams(ctx context.Context, config *Config, client *HTTPClient) ([]wireTeam, error) {
	logger.Get().Info(ctx, "randomizing teams")

	resp, err := client.Post(ctx, config.BaseURL+"/teams/randomize", struct{}{})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = readResponseBody(resp)
		return nil, fmt.Errorf("randomize failed with status: %d", resp.StatusCode)
	}

	var teams []wireTeam
	if err := decodeResponse(resp, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}

	logger.Get().Info(ctx, "teams created", logger.Int("count", len(teams)))
	return teams, nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var playersPerSecond float64
	if stats.Duration > 0 {
		playersPerSecond = float64(stats.PlayersSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("playersSubmitted", stats.PlayersSubmitted),
		logger.Int("playersAccepted", stats.PlayersAccepted),
		logger.Int("playersFailed", stats.PlayersFailed),
		logger.Int("teamsCreated", stats.TeamsCreated),
		logger.Int("invalidTeams", stats.InvalidTeams),
		logger.String("duration", stats.Duration.String()),
		logger.Any("playersPerSecond", playersPerSecond))
}
