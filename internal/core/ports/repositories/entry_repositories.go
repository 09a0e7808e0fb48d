package repositories

import (
	"context"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
)

// EntryWriter durably stores accepted journal entries. The durable entry id
// and detail-line ids are assigned at write time by the adapter.
type EntryWriter interface {
	// SaveEntry persists the entry header and returns its durable id.
	SaveEntry(ctx context.Context, companyID string, entry domain.JournalEntry) (string, error)

	// SaveDetailLines persists the entry's lines under a previously saved entry.
	SaveDetailLines(ctx context.Context, entryID string, lines []domain.JournalDetailLine) error
}

// EntryReader reads back previously persisted entries.
type EntryReader interface {
	// FindEntryByID returns the stored entry header.
	// Returns apperrors.ErrNotFound if no such entry exists for the company.
	FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// FindDetailLinesByEntryID returns the stored lines in their original order.
	FindDetailLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetailLine, error)
}

// EntryRepositoryFacade combines persistence and read-back for journal entries.
type EntryRepositoryFacade interface {
	EntryWriter
	EntryReader
}
