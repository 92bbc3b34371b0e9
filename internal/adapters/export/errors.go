package export

import "errors"

// Sentinel kinds for export/import errors.
var (
	ErrInvalidDocument    = errors.New("invalid export document")
	ErrUnsupportedVersion = errors.New("unsupported export version")
	ErrInvalidShareLink   = errors.New("invalid or corrupted share link")
)
