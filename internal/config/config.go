// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TeamSize is the default target team size for a fresh tournament.
	TeamSize int `koanf:"team_size"`

	// MaxTeams caps the number of teams (0 = unlimited).
	MaxTeams int `koanf:"max_teams"`

	// HistoryLimit bounds the stored randomization history.
	HistoryLimit int `koanf:"history_limit"`

	// RandomSeed fixes the shuffle seed when non-zero, for reproducible runs.
	RandomSeed int64 `koanf:"random_seed"`

	// ReservePlayersEnabled toggles the reserve list by default.
	ReservePlayersEnabled bool `koanf:"reserve_players_enabled"`

	// SkillBalancingEnabled toggles skill balancing by default.
	SkillBalancingEnabled bool `koanf:"skill_balancing_enabled"`

	// AllowedOrigins lists CORS origins for the browser client.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		TeamSize:       2,
		MaxTeams:       0,
		HistoryLimit:   10,
		AllowedOrigins: []string{"*"},
	}
}
