package seedtool

import "time"

// Config holds configuration for a roster seeding run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumPlayers  int           // Number of players to generate
	TeamSize    int           // Target team size to configure
	MaxTeams    int           // Team cap to configure (0 = unlimited)
	Balanced    bool          // Enable skill balancing with default categories
	ReserveRate int           // Percent of players flagged as reserves (0-100)
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	PlayersGenerated int
	PlayersSubmitted int
	PlayersAccepted  int
	PlayersFailed    int
	TeamsCreated     int
	InvalidTeams     int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// wire types mirroring the API payloads.

type wirePlayer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Locked     bool   `json:"locked"`
	TeamID     *int   `json:"teamId"`
	SkillLevel string `json:"skillLevel,omitempty"`
	IsReserve  bool   `json:"isReserve,omitempty"`
}

type wireTeam struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Players []wirePlayer `json:"players"`
}

type wireValidation struct {
	IsValid    bool     `json:"isValid"`
	Violations []string `json:"violations"`
}

type wireCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type wireSettings struct {
	EventName             string         `json:"eventName"`
	OrganizerName         string         `json:"organizerName"`
	TeamSize              int            `json:"teamSize"`
	MaxTeams              int            `json:"maxTeams"`
	ReservePlayersEnabled bool           `json:"reservePlayersEnabled"`
	SkillBalancingEnabled bool           `json:"skillBalancingEnabled"`
	SkillCategories       []wireCategory `json:"skillCategories"`
	CompositionRules      map[string]int `json:"teamCompositionRules"`
}
