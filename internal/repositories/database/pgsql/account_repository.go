package pgsql

import (
	"context"
	"errors"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	"github.com/contalibre/contalibre_backend/internal/models"
	"github.com/contalibre/contalibre_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository reads the chart of accounts and the company's central
// default accounts. Both tables are owned by the surrounding product; this
// repository is read-only.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a repository for chart-of-accounts reads.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// ListActiveAccounts returns every active account for the company.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `
		SELECT company_id, code, name, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		err := rows.Scan(
			&m.CompanyID, &m.Code, &m.Name, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return accounts, nil
}

// FindCentralDefaults returns the company's configured default accounts.
func (r *PgxAccountRepository) FindCentralDefaults(ctx context.Context, companyID string) (*domain.CentralDefaults, error) {
	query := `
		SELECT company_id,
		       default_expense_code, default_expense_name,
		       default_income_code, default_income_name,
		       input_tax_code, input_tax_name,
		       output_tax_code, output_tax_name,
		       payables_code, payables_name,
		       receivables_code, receivables_name
		FROM central_defaults
		WHERE company_id = $1;
	`
	var m models.CentralDefaults
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID,
		&m.DefaultExpenseCode, &m.DefaultExpenseName,
		&m.DefaultIncomeCode, &m.DefaultIncomeName,
		&m.InputTaxCode, &m.InputTaxName,
		&m.OutputTaxCode, &m.OutputTaxName,
		&m.PayablesCode, &m.PayablesName,
		&m.ReceivablesCode, &m.ReceivablesName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query central defaults", err)
	}

	defaults := mapping.ToDomainCentralDefaults(m)
	return &defaults, nil
}
