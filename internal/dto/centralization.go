package dto

import (
	"time"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SourceTransactionRequest is one raw register record in the request body.
type SourceTransactionRequest struct {
	EntityTaxID    string          `json:"entityTaxID" binding:"required"`
	EntityName     string          `json:"entityName"`
	DocumentType   string          `json:"documentType" binding:"required,oneof=INVOICE EXEMPT_INVOICE CREDIT_NOTE DEBIT_NOTE RECEIPT FEE_RECEIPT"`
	DocumentNumber string          `json:"documentNumber" binding:"required"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	IssueDate      *time.Time      `json:"issueDate,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
}

// CentralizationOptions tunes a single run.
type CentralizationOptions struct {
	Force       bool `json:"force"`       // Proceed past missing mappings using default accounts
	Save        bool `json:"save"`        // Persist accepted entries
	Detailed    bool `json:"detailed"`    // One line-group per transaction instead of aggregation
	KeepInvalid bool `json:"keepInvalid"` // Return unbalanced entries for diagnostic display
}

// CentralizationRequest is the body of POST /companies/:companyID/centralizations.
type CentralizationRequest struct {
	Period       string                     `json:"period" binding:"required,period"` // "YYYY-MM"
	Direction    string                     `json:"direction" binding:"required,oneof=PURCHASE SALE"`
	EntryDate    *time.Time                 `json:"entryDate,omitempty"` // Defaults to last day of period
	Transactions []SourceTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
	Options      CentralizationOptions      `json:"options"`
}

// ToDomainTransactions converts the request records into immutable domain inputs.
func (r CentralizationRequest) ToDomainTransactions() []domain.SourceTransaction {
	txns := make([]domain.SourceTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txns[i] = domain.SourceTransaction{
			EntityTaxID:    domain.NormalizeTaxID(t.EntityTaxID),
			EntityName:     t.EntityName,
			DocumentType:   domain.DocumentType(t.DocumentType),
			DocumentNumber: t.DocumentNumber,
			NetAmount:      t.NetAmount,
			TaxAmount:      t.TaxAmount,
			TotalAmount:    t.TotalAmount,
			IssueDate:      t.IssueDate,
			DueDate:        t.DueDate,
		}
	}
	return txns
}

// BatchSummary reports the outcome of one batch.
type BatchSummary struct {
	BatchNumber      int             `json:"batchNumber"`
	Success          bool            `json:"success"`
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Error            string          `json:"error,omitempty"`
}

// PersistError reports a failed write for one entry, keyed by reference code.
type PersistError struct {
	ReferenceCode string `json:"referenceCode"`
	Error         string `json:"error"`
}

// JournalDetailLineResponse is one detail line of a synthesized entry.
type JournalDetailLineResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntityTaxID string          `json:"entityTaxID,omitempty"`
	DocumentRef string          `json:"documentRef,omitempty"`
	CostCenter  string          `json:"costCenter,omitempty"`
}

// JournalEntryResponse is one synthesized (or stored) journal entry.
type JournalEntryResponse struct {
	EntryDate        time.Time                   `json:"entryDate"`
	Description      string                      `json:"description"`
	ReferenceCode    string                      `json:"referenceCode"`
	Direction        string                      `json:"direction"`
	Lines            []JournalDetailLineResponse `json:"lines"`
	BatchIndex       int                         `json:"batchIndex"`
	BatchCount       int                         `json:"batchCount"`
	TransactionCount int                         `json:"transactionCount"`
	Period           string                      `json:"period"`
}

// CentralizationResponse is the full run result.
type CentralizationResponse struct {
	Validation        domain.ValidationResult `json:"validation"`
	Batches           []BatchSummary          `json:"batches"`
	Entries           []JournalEntryResponse  `json:"entries"`
	PersistedEntryIDs []string                `json:"persistedEntryIDs"`
	PersistErrors     []PersistError          `json:"persistErrors,omitempty"`
}

// GetEntryResponse wraps a stored entry read back from the ledger.
type GetEntryResponse struct {
	EntryID string               `json:"entryID"`
	Entry   JournalEntryResponse `json:"entry"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response form.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalDetailLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalDetailLineResponse{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			EntityTaxID: l.EntityTaxID,
			DocumentRef: l.DocumentRef,
			CostCenter:  l.CostCenter,
		}
	}
	return JournalEntryResponse{
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		ReferenceCode:    e.ReferenceCode,
		Direction:        string(e.Direction),
		Lines:            lines,
		BatchIndex:       e.BatchIndex,
		BatchCount:       e.BatchCount,
		TransactionCount: e.TransactionCount,
		Period:           e.Period,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
