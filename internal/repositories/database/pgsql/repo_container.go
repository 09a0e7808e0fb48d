package pgsql

import (
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		EntityMappingRepo: newPgxEntityMappingRepository(dbPool),
		EntryRepo:         newPgxEntryRepository(dbPool),
	}
}
