package pgsql

import (
	"context"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	"github.com/contalibre/contalibre_backend/internal/models"
	"github.com/contalibre/contalibre_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntityMappingRepository reads the entity/account mapping table owned by
// the entity registry.
type PgxEntityMappingRepository struct {
	BaseRepository
}

// newPgxEntityMappingRepository creates a repository for mapping reads.
func newPgxEntityMappingRepository(pool *pgxpool.Pool) portsrepo.EntityMappingRepositoryFacade {
	return &PgxEntityMappingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntityMappingRepository implements the facade
var _ portsrepo.EntityMappingRepositoryFacade = (*PgxEntityMappingRepository)(nil)

// FindMappingsByTaxIDs returns the mappings for the given tax ids, keyed by
// tax id. Missing entities are absent from the result.
func (r *PgxEntityMappingRepository) FindMappingsByTaxIDs(ctx context.Context, companyID string, taxIDs []string) (map[string]domain.EntityAccountMapping, error) {
	result := make(map[string]domain.EntityAccountMapping, len(taxIDs))
	if len(taxIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT company_id, entity_tax_id, entity_name,
		       account_code, account_name, overrides, cost_center, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM entity_account_mappings
		WHERE company_id = $1 AND entity_tax_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, companyID, taxIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entity mappings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.EntityAccountMapping
		err := rows.Scan(
			&m.CompanyID, &m.EntityTaxID, &m.EntityName,
			&m.AccountCode, &m.AccountName, &m.OverridesJSON, &m.CostCenter, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity mapping row", err)
		}
		domainMapping, err := mapping.ToDomainEntityMapping(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode entity mapping overrides", err)
		}
		result[domainMapping.EntityTaxID] = domainMapping
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate entity mapping rows", err)
	}
	return result, nil
}
