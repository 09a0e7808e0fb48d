package repositories

import (
	"context"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
)

// EntityMappingRepositoryFacade provides read access to the entity/account
// mapping table. Owned by the entity registry; read-only to this core.
type EntityMappingRepositoryFacade interface {
	// FindMappingsByTaxIDs returns the mappings for the given entity tax ids,
	// keyed by tax id. Entities without a mapping are simply absent from the
	// result; that is not an error at this layer.
	FindMappingsByTaxIDs(ctx context.Context, companyID string, taxIDs []string) (map[string]domain.EntityAccountMapping, error)
}
