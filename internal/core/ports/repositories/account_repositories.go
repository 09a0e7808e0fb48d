package repositories

import (
	"context"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
)

// AccountReader provides read access to a company's chart of accounts.
// The chart is owned by the surrounding product; the synthesis core only
// takes point-in-time snapshots at the start of a run.
type AccountReader interface {
	// ListActiveAccounts returns every active account for the company.
	ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// CentralDefaultsReader fetches the company's global fallback accounts.
type CentralDefaultsReader interface {
	// FindCentralDefaults returns the configured default accounts.
	// Returns apperrors.ErrNotFound if the company has none configured.
	FindCentralDefaults(ctx context.Context, companyID string) (*domain.CentralDefaults, error)
}

// AccountRepositoryFacade combines all chart-of-accounts read operations.
type AccountRepositoryFacade interface {
	AccountReader
	CentralDefaultsReader
}
