package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/contalibre/contalibre_backend/internal/models"
)

// overrideRef is the JSONB shape of one per-document-type override value.
type overrideRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToDomainEntityMapping converts a db mapping row to its domain form,
// decoding the overrides JSONB column into a typed map.
func ToDomainEntityMapping(m models.EntityAccountMapping) (domain.EntityAccountMapping, error) {
	result := domain.EntityAccountMapping{
		EntityTaxID: m.EntityTaxID,
		EntityName:  m.EntityName,
		Account:     domain.AccountRef{Code: m.AccountCode, Name: m.AccountName},
		CostCenter:  m.CostCenter,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}

	if len(m.OverridesJSON) > 0 {
		raw := map[string]overrideRef{}
		if err := json.Unmarshal(m.OverridesJSON, &raw); err != nil {
			return domain.EntityAccountMapping{}, fmt.Errorf("invalid overrides payload for entity %s: %w", m.EntityTaxID, err)
		}
		if len(raw) > 0 {
			result.Overrides = make(map[domain.DocumentType]domain.AccountRef, len(raw))
			for docType, ref := range raw {
				result.Overrides[domain.DocumentType(docType)] = domain.AccountRef{Code: ref.Code, Name: ref.Name}
			}
		}
	}

	return result, nil
}
