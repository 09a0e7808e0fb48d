package models

// EntityAccountMapping mirrors one row of the entity_account_mappings table.
// Per-document-type overrides are stored as a JSONB column keyed by document
// type, each value holding an account code and name.
type EntityAccountMapping struct {
	CompanyID     string `json:"companyID"`
	EntityTaxID   string `json:"entityTaxID"`
	EntityName    string `json:"entityName"`
	AccountCode   string `json:"accountCode"`
	AccountName   string `json:"accountName"`
	OverridesJSON []byte `json:"-"` // Raw JSONB payload
	CostCenter    string `json:"costCenter"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
