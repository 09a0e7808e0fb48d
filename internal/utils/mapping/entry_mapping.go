package mapping

import (
	"time"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/contalibre/contalibre_backend/internal/models"
)

// ToModelEntry converts a synthesized domain entry into its db row form.
// The durable entry id is assigned by the repository at write time.
func ToModelEntry(entryID, companyID string, entry domain.JournalEntry, now time.Time) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          entryID,
		CompanyID:        companyID,
		EntryDate:        entry.EntryDate,
		Description:      entry.Description,
		ReferenceCode:    entry.ReferenceCode,
		Direction:        string(entry.Direction),
		BatchIndex:       entry.BatchIndex,
		BatchCount:       entry.BatchCount,
		TransactionCount: entry.TransactionCount,
		Period:           entry.Period,
		CreatedAt:        now,
	}
}

// ToModelDetailLine converts one domain line into its db row form.
func ToModelDetailLine(lineID, entryID string, lineNo int, line domain.JournalDetailLine) models.JournalDetailLine {
	return models.JournalDetailLine{
		LineID:      lineID,
		EntryID:     entryID,
		LineNo:      lineNo,
		AccountCode: line.AccountCode,
		AccountName: line.AccountName,
		Description: line.Description,
		Debit:       line.Debit,
		Credit:      line.Credit,
		EntityTaxID: line.EntityTaxID,
		DocumentRef: line.DocumentRef,
		CostCenter:  line.CostCenter,
	}
}

// ToDomainEntry converts a stored entry row back to the domain form.
// Detail lines are loaded and attached separately.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		ReferenceCode:    m.ReferenceCode,
		Direction:        domain.Direction(m.Direction),
		BatchIndex:       m.BatchIndex,
		BatchCount:       m.BatchCount,
		TransactionCount: m.TransactionCount,
		Period:           m.Period,
	}
}

// ToDomainDetailLines converts stored line rows back to domain lines,
// preserving their stored order.
func ToDomainDetailLines(rows []models.JournalDetailLine) []domain.JournalDetailLine {
	lines := make([]domain.JournalDetailLine, len(rows))
	for i, row := range rows {
		lines[i] = domain.JournalDetailLine{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			EntityTaxID: row.EntityTaxID,
			DocumentRef: row.DocumentRef,
			CostCenter:  row.CostCenter,
		}
	}
	return lines
}
