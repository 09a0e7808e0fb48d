package domain

// Account represents one chart-of-accounts row for a company.
// The chart of accounts is an external collaborator; the synthesis core only
// reads code/name/active to validate coverage and label detail lines.
type Account struct {
	CompanyID string `json:"companyID"`
	Code      string `json:"code"` // Hierarchical code (e.g. "5.1.1.001")
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
