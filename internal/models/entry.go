package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors one row of the journal_entries table.
type JournalEntry struct {
	EntryID          string    `json:"entryID"` // Primary key (UUID), assigned at write time
	CompanyID        string    `json:"companyID"`
	EntryDate        time.Time `json:"entryDate"`
	Description      string    `json:"description"`
	ReferenceCode    string    `json:"referenceCode"`
	Direction        string    `json:"direction"`
	BatchIndex       int       `json:"batchIndex"`
	BatchCount       int       `json:"batchCount"`
	TransactionCount int       `json:"transactionCount"`
	Period           string    `json:"period"`
	CreatedAt        time.Time `json:"createdAt"`
}

// JournalDetailLine mirrors one row of the journal_detail_lines table.
// LineNo preserves the synthesized line order within the entry.
type JournalDetailLine struct {
	LineID      string          `json:"lineID"` // Primary key (UUID), assigned at write time
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntityTaxID string          `json:"entityTaxID"`
	DocumentRef string          `json:"documentRef"`
	CostCenter  string          `json:"costCenter"`
}
