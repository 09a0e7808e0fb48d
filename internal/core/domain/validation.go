package domain

// ValidationResult is the coverage audit outcome for one transaction set.
type ValidationResult struct {
	IsValid         bool     `json:"isValid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	MissingEntities []string `json:"missingEntities"` // Tax ids with no mapping
	MissingAccounts []string `json:"missingAccounts"` // Tax ids mapped to a nonexistent account
}
