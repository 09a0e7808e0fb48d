package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NormalizeTaxID canonicalizes an entity tax identifier: thousand separators
// and surrounding whitespace are stripped and the check digit is uppercased,
// so "76.543.210-k " and "76543210-K" compare equal.
func NormalizeTaxID(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

// Direction indicates which register a transaction set belongs to.
type Direction string

const (
	Purchase Direction = "PURCHASE"
	Sale     Direction = "SALE"
)

// DocumentType enumerates the tax document kinds accepted from the register.
type DocumentType string

const (
	Invoice       DocumentType = "INVOICE"
	ExemptInvoice DocumentType = "EXEMPT_INVOICE"
	CreditNote    DocumentType = "CREDIT_NOTE"
	DebitNote     DocumentType = "DEBIT_NOTE"
	Receipt       DocumentType = "RECEIPT"
	FeeReceipt    DocumentType = "FEE_RECEIPT"
)

// SourceTransaction is one raw purchase/sale record from the register.
// It is an immutable input; nothing in the synthesis pipeline mutates it.
type SourceTransaction struct {
	EntityTaxID    string          `json:"entityTaxID"` // Normalized tax identifier (e.g. "76543210-5")
	EntityName     string          `json:"entityName"`
	DocumentType   DocumentType    `json:"documentType"`
	DocumentNumber string          `json:"documentNumber"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // Expected: net + tax within 1-unit rounding
	IssueDate      *time.Time      `json:"issueDate,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
}
