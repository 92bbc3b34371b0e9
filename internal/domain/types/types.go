// Package types contains common types used across the application
package types

// SkillCount reports how a team measures against one composition rule.
type SkillCount struct {
	Actual       int    `json:"actual"`
	Required     int    `json:"required"`
	CategoryName string `json:"categoryName"`
}

// TeamValidation is the derived verdict for a single team against the active
// composition rules. It is computed on demand and never stored.
type TeamValidation struct {
	IsValid           bool                  `json:"isValid"`
	Violations        []string              `json:"violations"`
	SkillDistribution map[string]SkillCount `json:"skillDistribution"`
}
