package seedtool

import (
	"fmt"
	"os"

	"github.com/rostermix/rostermix/pkg/logger"
)

// SetupLogging initializes the logger for the tool.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the roster seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`Rostermix Roster Seed Tool
==========================

A concurrent tool for seeding a running rostermix service with a generated
roster and verifying the resulting team partition.

Usage:
  go run cmd/seed-roster/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9090")
  -players int
        Number of players to generate and submit (default 64)
  -size int
        Target team size to configure (default 4)
  -max int
        Maximum number of teams, 0 for unlimited (default 0)
  -balanced
        Enable skill balancing with the default categories
  -reserve int
        Percent of players flagged as reserves (default 0)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-roster/main.go

  # Large balanced roster with reserves
  go run cmd/seed-roster/main.go -players 200 -size 5 -balanced -reserve 10

  # Capped team count
  go run cmd/seed-roster/main.go -players 50 -size 4 -max 8
`)
}
