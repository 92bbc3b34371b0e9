package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rostermix/rostermix/internal/seedtool"
)

// Default configuration constants.
const (
	defaultNumPlayers = 64
	defaultTeamSize   = 4
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9090", "Base URL of the service")
		numPlayers  = flag.Int("players", defaultNumPlayers, "Number of players to generate and submit")
		teamSize    = flag.Int("size", defaultTeamSize, "Target team size to configure")
		maxTeams    = flag.Int("max", 0, "Maximum number of teams (0 = unlimited)")
		balanced    = flag.Bool("balanced", false, "Enable skill balancing with default categories")
		reserveRate = flag.Int("reserve", 0, "Percent of players flagged as reserves")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedtool.ShowHelp()
		return
	}

	if err := seedtool.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedtool.Config{
		BaseURL:     *baseURL,
		NumPlayers:  *numPlayers,
		TeamSize:    *teamSize,
		MaxTeams:    *maxTeams,
		Balanced:    *balanced,
		ReserveRate: *reserveRate,
		Workers:     *workers,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := seedtool.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed run failed: " + err.Error() + "\n")
		return
	}
}
