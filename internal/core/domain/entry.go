package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalDetailLine is one account-level movement within a journal entry.
// Exactly one of Debit/Credit is non-zero; zero-amount lines are never emitted.
type JournalDetailLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntityTaxID string          `json:"entityTaxID,omitempty"`
	DocumentRef string          `json:"documentRef,omitempty"`
	CostCenter  string          `json:"costCenter,omitempty"`
}

// JournalEntry is a balanced double-entry voucher synthesized from one batch.
// Sum of debit lines equals sum of credit lines within a 0.01 tolerance.
type JournalEntry struct {
	EntryDate        time.Time           `json:"entryDate"`
	Description      string              `json:"description"`
	ReferenceCode    string              `json:"referenceCode"` // Unique within a run
	Direction        Direction           `json:"direction"`
	Lines            []JournalDetailLine `json:"lines"`
	BatchIndex       int                 `json:"batchIndex"` // 1-based
	BatchCount       int                 `json:"batchCount"`
	TransactionCount int                 `json:"transactionCount"`
	Period           string              `json:"period"` // Source period, "YYYY-MM"
}

// BatchLimits carries the downstream ledger's hard size limits.
// Values are per-deployment configuration, not derived.
type BatchLimits struct {
	MaxTransactions int             `json:"maxTransactions"`
	MaxDetailLines  int             `json:"maxDetailLines"`
	MaxAmount       decimal.Decimal `json:"maxAmount"`
}
