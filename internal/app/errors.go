package service

import "errors"

// Sentinel kinds for service-level errors.
var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrLastCategory     = errors.New("cannot remove the last skill category while balancing is enabled")
	ErrInvalidTeamIndex = errors.New("team index out of range")
)
