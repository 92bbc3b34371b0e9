package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Share types use single-letter JSON keys to keep the encoded fragment short
// enough for a URL. The payload is a one-way static snapshot: decoding it
// never requires a server round-trip.

// SharePlayer is the trimmed player projection inside a share link.
type SharePlayer struct {
	Name  string `json:"n"`
	Skill string `json:"s,omitempty"`
}

// ShareTeam is the trimmed team projection inside a share link.
type ShareTeam struct {
	Name    string        `json:"n"`
	Players []SharePlayer `json:"p"`
}

// ShareCategory is the trimmed skill category projection.
type ShareCategory struct {
	ID    string `json:"i"`
	Name  string `json:"n"`
	Color string `json:"c"`
}

// ShareBracket references an externally hosted bracket embed. Brackets pass
// through share links as opaque data; rostermix never generates them.
type ShareBracket struct {
	ID       string `json:"i"`
	Title    string `json:"t"`
	EmbedURL string `json:"u"`
}

// SharePayload is the full share-link projection.
type SharePayload struct {
	EventName      string          `json:"e"`
	OrganizerName  string          `json:"o"`
	Teams          []ShareTeam     `json:"t"`
	Categories     []ShareCategory `json:"s"`
	SkillBalancing bool            `json:"sb"`
	Brackets       []ShareBracket  `json:"b"`
	Timestamp      int64           `json:"ts"`
}

// EncodeShare renders the payload as unpadded URL-safe base64, suitable for a
// URL fragment ("#share=...").
func EncodeShare(payload SharePayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeShare reverses EncodeShare. Standard-alphabet and padded input is
// tolerated so links mangled by copy-paste still resolve.
func DecodeShare(encoded string) (SharePayload, error) {
	normalized := strings.NewReplacer("+", "-", "/", "_", "=", "").Replace(encoded)

	raw, err := base64.RawURLEncoding.DecodeString(normalized)
	if err != nil {
		return SharePayload{}, fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}

	var payload SharePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return SharePayload{}, fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}
	return payload, nil
}
