package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre_backend/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre_backend/internal/core/ports/services"
	"github.com/contalibre/contalibre_backend/internal/dto"
	"github.com/contalibre/contalibre_backend/internal/middleware"
	"github.com/contalibre/contalibre_backend/internal/utils/accounting"
	"github.com/contalibre/contalibre_backend/internal/utils/formatting"
)

// centralizationService orchestrates one synthesis run:
// Validating -> (Blocked | Partitioning) -> Synthesizing -> Auditing ->
// (Persisting) -> Done. Everything between the initial snapshot reads and
// the optional writes is a pure in-memory transform.
type centralizationService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	mappingRepo   portsrepo.EntityMappingRepositoryFacade
	entryRepo     portsrepo.EntryRepositoryFacade
	limits        domain.BatchLimits
	retryMax      uint64
	retryInterval time.Duration

	validator   *CoverageValidator
	partitioner *BatchPartitioner
}

// NewCentralizationService creates the centralization service.
func NewCentralizationService(
	accountRepo portsrepo.AccountRepositoryFacade,
	mappingRepo portsrepo.EntityMappingRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade,
	limits domain.BatchLimits,
	retryMax uint64,
	retryInterval time.Duration,
) portssvc.CentralizationSvcFacade {
	return &centralizationService{
		accountRepo:   accountRepo,
		mappingRepo:   mappingRepo,
		entryRepo:     entryRepo,
		limits:        limits,
		retryMax:      retryMax,
		retryInterval: retryInterval,
		validator:     NewCoverageValidator(),
		partitioner:   NewBatchPartitioner(),
	}
}

// Ensure centralizationService implements the facade.
var _ portssvc.CentralizationSvcFacade = (*centralizationService)(nil)

// Centralize implements portssvc.CentralizationSvcFacade.
func (s *centralizationService) Centralize(ctx context.Context, companyID string, req dto.CentralizationRequest) (*dto.CentralizationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if companyID == "" {
		return nil, fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}
	if len(req.Transactions) == 0 {
		return nil, fmt.Errorf("%w: at least one transaction is required", apperrors.ErrValidation)
	}
	entryDate, err := resolveEntryDate(req)
	if err != nil {
		return nil, err
	}

	direction := domain.Direction(req.Direction)
	txns := req.ToDomainTransactions()

	// --- Snapshot reads (point-in-time, not locked) ---
	mappings, accounts, defaults, err := s.fetchSnapshots(ctx, companyID, txns)
	if err != nil {
		logger.Error("Failed to fetch centralization snapshots", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, err
	}

	// --- Validating ---
	validation := s.validator.Validate(txns, mappings, accounts, req.Options.Force)
	resp := &dto.CentralizationResponse{
		Validation:        validation,
		Batches:           []dto.BatchSummary{},
		Entries:           []dto.JournalEntryResponse{},
		PersistedEntryIDs: []string{},
	}
	if !validation.IsValid {
		// Blocked is terminal; the caller may retry with force.
		logger.Warn("Centralization blocked by coverage validation",
			slog.String("company_id", companyID),
			slog.Int("missing_entities", len(validation.MissingEntities)),
			slog.Int("missing_accounts", len(validation.MissingAccounts)))
		return resp, nil
	}

	// --- Partitioning ---
	batches := s.partitioner.Partition(txns, s.limits, req.Options.Detailed)

	// --- Synthesizing + Auditing ---
	synthesizer := NewJournalSynthesizer(NewAccountResolver(*defaults))
	var accepted []domain.JournalEntry
	for i, batch := range batches {
		params := SynthesisParams{
			Period:     req.Period,
			Direction:  direction,
			EntryDate:  entryDate,
			Limits:     s.limits,
			Detailed:   req.Options.Detailed,
			Mappings:   mappings,
			BatchIndex: i + 1,
			BatchCount: len(batches),
		}
		entries := synthesizer.Synthesize(batch, params)

		summary := dto.BatchSummary{
			BatchNumber:      i + 1,
			Success:          true,
			TransactionCount: len(batch),
			TotalAmount:      sumTotals(batch),
		}
		for _, entry := range entries {
			if auditErr := accounting.AuditBalance(entry); auditErr != nil {
				summary.Success = false
				summary.Error = fmt.Sprintf("%s (discrepancy %s)", auditErr.Error(), formatting.FormatAmount(accounting.BalanceDiscrepancy(entry)))
				logger.Error("Synthesized entry failed balance audit",
					slog.String("reference_code", entry.ReferenceCode),
					slog.String("error", auditErr.Error()))
				if req.Options.KeepInvalid {
					resp.Entries = append(resp.Entries, dto.ToJournalEntryResponse(&entry))
				}
				continue
			}
			accepted = append(accepted, entry)
			resp.Entries = append(resp.Entries, dto.ToJournalEntryResponse(&entry))
		}
		resp.Batches = append(resp.Batches, summary)
	}

	// --- Persisting (optional; one entry at a time, no cross-entry rollback) ---
	if req.Options.Save {
		s.persistEntries(ctx, companyID, accepted, resp)
	}

	logger.Info("Centralization run completed",
		slog.String("company_id", companyID),
		slog.String("period", req.Period),
		slog.String("direction", string(direction)),
		slog.Int("batches", len(batches)),
		slog.Int("entries", len(resp.Entries)),
		slog.Int("persisted", len(resp.PersistedEntryIDs)))
	return resp, nil
}

// persistEntries writes accepted entries in batch order. A failed write is
// recorded against the entry's reference code and does not stop or roll
// back the rest.
func (s *centralizationService) persistEntries(ctx context.Context, companyID string, entries []domain.JournalEntry, resp *dto.CentralizationResponse) {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, entry := range entries {
		var entryID string
		err := s.withRetry(ctx, func() error {
			id, saveErr := s.entryRepo.SaveEntry(ctx, companyID, entry)
			if saveErr != nil {
				return saveErr
			}
			entryID = id
			return nil
		})
		if err == nil {
			err = s.withRetry(ctx, func() error {
				return s.entryRepo.SaveDetailLines(ctx, entryID, entry.Lines)
			})
		}
		if err != nil {
			logger.Error("Failed to persist journal entry",
				slog.String("reference_code", entry.ReferenceCode),
				slog.String("error", err.Error()))
			resp.PersistErrors = append(resp.PersistErrors, dto.PersistError{
				ReferenceCode: entry.ReferenceCode,
				Error:         err.Error(),
			})
			continue
		}
		resp.PersistedEntryIDs = append(resp.PersistedEntryIDs, entryID)
	}
}

// GetEntry implements portssvc.CentralizationSvcFacade.
func (s *centralizationService) GetEntry(ctx context.Context, companyID string, entryID string) (*dto.GetEntryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := s.entryRepo.FindDetailLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch detail lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve detail lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines

	return &dto.GetEntryResponse{
		EntryID: entryID,
		Entry:   dto.ToJournalEntryResponse(entry),
	}, nil
}

// fetchSnapshots performs the run's blocking reads with bounded retries.
func (s *centralizationService) fetchSnapshots(ctx context.Context, companyID string, txns []domain.SourceTransaction) (map[string]domain.EntityAccountMapping, map[string]domain.Account, *domain.CentralDefaults, error) {
	taxIDs := distinctTaxIDs(txns)

	var mappings map[string]domain.EntityAccountMapping
	err := s.withRetry(ctx, func() error {
		var readErr error
		mappings, readErr = s.mappingRepo.FindMappingsByTaxIDs(ctx, companyID, taxIDs)
		return readErr
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch entity mappings: %w", err)
	}

	var accountList []domain.Account
	err = s.withRetry(ctx, func() error {
		var readErr error
		accountList, readErr = s.accountRepo.ListActiveAccounts(ctx, companyID)
		return readErr
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch chart of accounts: %w", err)
	}
	accounts := make(map[string]domain.Account, len(accountList))
	for _, account := range accountList {
		accounts[account.Code] = account
	}

	var defaults *domain.CentralDefaults
	err = s.withRetry(ctx, func() error {
		var readErr error
		defaults, readErr = s.accountRepo.FindCentralDefaults(ctx, companyID)
		if errors.Is(readErr, apperrors.ErrNotFound) {
			return backoff.Permanent(readErr)
		}
		return readErr
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: central default accounts not configured for company %s", apperrors.ErrValidation, companyID)
		}
		return nil, nil, nil, fmt.Errorf("failed to fetch central defaults: %w", err)
	}

	return mappings, accounts, defaults, nil
}

// withRetry runs op with exponential backoff, capped at retryMax attempts
// beyond the first. It never holds any in-process lock while waiting.
func (s *centralizationService) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, s.retryMax), ctx))
}

// resolveEntryDate returns the requested entry date, defaulting to the last
// day of the source period.
func resolveEntryDate(req dto.CentralizationRequest) (time.Time, error) {
	if req.EntryDate != nil {
		return *req.EntryDate, nil
	}
	start, err := time.Parse("2006-01", req.Period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: period must be in YYYY-MM format", apperrors.ErrValidation)
	}
	return start.AddDate(0, 1, -1), nil
}

func sumTotals(txns []domain.SourceTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.TotalAmount)
	}
	return sum
}
