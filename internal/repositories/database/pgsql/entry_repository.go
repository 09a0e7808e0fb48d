package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	"github.com/contalibre/contalibre_backend/internal/models"
	"github.com/contalibre/contalibre_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntryRepository is the persistence adapter for synthesized journal
// entries. Durable entry and line ids are assigned here at write time.
type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a repository for journal entry persistence.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// SaveEntry persists the entry header and returns its durable id.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, companyID string, entry domain.JournalEntry) (string, error) {
	entryID := uuid.NewString()
	m := mapping.ToModelEntry(entryID, companyID, entry, time.Now().UTC())

	query := `
		INSERT INTO journal_entries (
			entry_id, company_id, entry_date, description, reference_code,
			direction, batch_index, batch_count, transaction_count, period, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.CompanyID, m.EntryDate, m.Description, m.ReferenceCode,
		m.Direction, m.BatchIndex, m.BatchCount, m.TransactionCount, m.Period, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return "", fmt.Errorf("%w: entry with reference %s already exists", apperrors.ErrDuplicate, m.ReferenceCode)
		}
		return "", apperrors.NewAppError(500, "failed to insert journal entry "+m.ReferenceCode, err)
	}
	return entryID, nil
}

// SaveDetailLines persists the entry's lines atomically, preserving their
// synthesized order via line_no.
func (r *PgxEntryRepository) SaveDetailLines(ctx context.Context, entryID string, lines []domain.JournalDetailLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	query := `
		INSERT INTO journal_detail_lines (
			line_id, entry_id, line_no, account_code, account_name,
			description, debit, credit, entity_tax_id, document_ref, cost_center
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for i, line := range lines {
		m := mapping.ToModelDetailLine(uuid.NewString(), entryID, i+1, line)
		_, err := tx.Exec(ctx, query,
			m.LineID, m.EntryID, m.LineNo, m.AccountCode, m.AccountName,
			m.Description, m.Debit, m.Credit, m.EntityTaxID, m.DocumentRef, m.CostCenter,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert detail line for entry "+entryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID returns one stored entry header for the company.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, entry_date, description, reference_code,
		       direction, batch_index, batch_count, transaction_count, period, created_at
		FROM journal_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, companyID, entryID).Scan(
		&m.EntryID, &m.CompanyID, &m.EntryDate, &m.Description, &m.ReferenceCode,
		&m.Direction, &m.BatchIndex, &m.BatchCount, &m.TransactionCount, &m.Period, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query journal entry", err)
	}

	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// FindDetailLinesByEntryID returns the stored lines in synthesized order.
func (r *PgxEntryRepository) FindDetailLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetailLine, error) {
	query := `
		SELECT line_id, entry_id, line_no, account_code, account_name,
		       description, debit, credit, entity_tax_id, document_ref, cost_center
		FROM journal_detail_lines
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query detail lines", err)
	}
	defer rows.Close()

	var lineRows []models.JournalDetailLine
	for rows.Next() {
		var m models.JournalDetailLine
		err := rows.Scan(
			&m.LineID, &m.EntryID, &m.LineNo, &m.AccountCode, &m.AccountName,
			&m.Description, &m.Debit, &m.Credit, &m.EntityTaxID, &m.DocumentRef, &m.CostCenter,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan detail line row", err)
		}
		lineRows = append(lineRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate detail line rows", err)
	}
	return mapping.ToDomainDetailLines(lineRows), nil
}
