package services

import (
	"context"

	"github.com/contalibre/contalibre_backend/internal/dto"
)

// CentralizationSvcFacade is the single domain operation of this service:
// converting a register's raw transactions into balanced journal entries,
// plus read-back of previously persisted entries.
type CentralizationSvcFacade interface {
	// Centralize runs validate -> partition -> synthesize -> audit ->
	// (persist) for one company/period/direction and returns the full run
	// result. Coverage problems are data in the response; only malformed
	// input or collaborator failures return an error.
	Centralize(ctx context.Context, companyID string, req dto.CentralizationRequest) (*dto.CentralizationResponse, error)

	// GetEntry reads back one persisted entry with its detail lines.
	GetEntry(ctx context.Context, companyID string, entryID string) (*dto.GetEntryResponse, error)
}
