package domain

// AccountRef identifies a chart-of-accounts account by code and display name.
type AccountRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IsZero reports whether the reference is unset.
func (a AccountRef) IsZero() bool {
	return a.Code == ""
}

// EntityAccountMapping links an external entity (supplier or customer) to the
// ledger account its documents should post against. Owned by the entity
// registry; read-only to the synthesis core.
type EntityAccountMapping struct {
	EntityTaxID string                      `json:"entityTaxID"`
	EntityName  string                      `json:"entityName"`
	Account     AccountRef                  `json:"account"`             // General account; may be unset
	Overrides   map[DocumentType]AccountRef `json:"overrides,omitempty"` // Per-document-type overrides; absence means no override
	CostCenter  string                      `json:"costCenter,omitempty"`
	IsActive    bool                        `json:"isActive"`
	AuditFields
}

// OverrideFor returns the per-document-type override, if one exists.
func (m EntityAccountMapping) OverrideFor(dt DocumentType) (AccountRef, bool) {
	if m.Overrides == nil {
		return AccountRef{}, false
	}
	ref, ok := m.Overrides[dt]
	return ref, ok
}
