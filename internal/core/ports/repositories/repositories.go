package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is assembled once at startup by the pgsql package and handed to the
// service container.
type RepositoryProvider struct {
	AccountRepo       AccountRepositoryFacade
	EntityMappingRepo EntityMappingRepositoryFacade
	EntryRepo         EntryRepositoryFacade
}
