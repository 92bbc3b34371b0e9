// Package export implements the versioned configuration document and the
// share-link encoding consumed by external clients. Neither touches live
// state; both work on snapshots handed in by the service.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rostermix/rostermix/internal/domain/model"
)

// Version identifies the export document format.
const Version = "1.0"

// Document is the versioned JSON projection used for file export/import.
type Document struct {
	Version       string         `json:"version"`
	ExportDate    time.Time      `json:"exportDate"`
	EventName     string         `json:"eventName"`
	OrganizerName string         `json:"organizerName"`
	Players       []model.Player `json:"players"`
	Teams         []model.Team   `json:"teams"`
	TeamSize      int            `json:"teamSize"`
}

// NewDocument assembles an export document from state snapshots.
func NewDocument(players []model.Player, teams []model.Team, settings model.Settings, exportDate time.Time) Document {
	return Document{
		Version:       Version,
		ExportDate:    exportDate.UTC(),
		EventName:     settings.EventName,
		OrganizerName: settings.OrganizerName,
		Players:       model.ClonePlayers(players),
		Teams:         model.CloneTeams(teams),
		TeamSize:      settings.TeamSize,
	}
}

// Marshal renders the document as indented JSON, matching the file format
// clients download.
func (d Document) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return out, nil
}

// Parse validates and decodes an export document. The version field must be
// present and supported, and players/teams must be JSON arrays; anything
// else is rejected without partially applied state.
func Parse(data []byte) (Document, error) {
	var probe struct {
		Version string          `json:"version"`
		Players json.RawMessage `json:"players"`
		Teams   json.RawMessage `json:"teams"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if probe.Version == "" {
		return Document{}, fmt.Errorf("%w: missing version", ErrInvalidDocument)
	}
	if probe.Version != Version {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, probe.Version)
	}
	if !isJSONArray(probe.Players) || !isJSONArray(probe.Teams) {
		return Document{}, fmt.Errorf("%w: players and teams must be arrays", ErrInvalidDocument)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
