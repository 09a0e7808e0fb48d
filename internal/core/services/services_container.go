package services

import (
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre_backend/internal/core/ports/services"
	"github.com/contalibre/contalibre_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Centralization = NewCentralizationService(
		repos.AccountRepo,
		repos.EntityMappingRepo,
		repos.EntryRepo,
		cfg.BatchLimits(),
		cfg.IORetryMax,
		cfg.IORetryInterval,
	)

	return container
}
