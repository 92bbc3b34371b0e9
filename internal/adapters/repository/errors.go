package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrHistoryNotFound = errors.New("history entry not found")
)
