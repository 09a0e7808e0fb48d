package services

import (
	"fmt"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/contalibre/contalibre_backend/internal/utils/formatting"
	"github.com/shopspring/decimal"
)

// docTotalTolerance is the acceptable rounding gap between a document's
// declared total and net+tax (one currency unit, per register convention).
var docTotalTolerance = decimal.NewFromInt(1)

// CoverageValidator audits a transaction set against the company's entity
// mappings and chart-of-accounts snapshot before synthesis starts.
type CoverageValidator struct{}

// NewCoverageValidator creates a CoverageValidator.
func NewCoverageValidator() *CoverageValidator {
	return &CoverageValidator{}
}

// Validate computes the coverage report for one run. The result is a pure
// function of its inputs: running it twice on the same snapshot yields the
// same ValidationResult.
//
// Blocking rules:
//   - an entity with no mapping blocks the run, unless force is set, in
//     which case the entity falls back to default accounts and only a
//     warning is recorded;
//   - a mapping whose account code is missing from the active chart of
//     accounts always blocks, force or not, because posting to it would
//     corrupt the ledger;
//   - an inactive mapping never blocks, it is recorded as a warning.
func (v *CoverageValidator) Validate(
	txns []domain.SourceTransaction,
	mappings map[string]domain.EntityAccountMapping,
	accounts map[string]domain.Account,
	force bool,
) domain.ValidationResult {
	result := domain.ValidationResult{
		Errors:          []string{},
		Warnings:        []string{},
		MissingEntities: []string{},
		MissingAccounts: []string{},
	}

	for _, taxID := range distinctTaxIDs(txns) {
		mapping, mapped := mappings[taxID]
		if !mapped {
			result.MissingEntities = append(result.MissingEntities, taxID)
			msg := fmt.Sprintf("entity %s has no account mapping", taxID)
			if force {
				result.Warnings = append(result.Warnings, msg+"; falling back to default account")
			} else {
				result.Errors = append(result.Errors, msg)
			}
			continue
		}

		if !mapping.IsActive {
			result.Warnings = append(result.Warnings, fmt.Sprintf("mapping for entity %s is inactive", taxID))
		}

		if missing := missingMappedAccounts(mapping, accounts); len(missing) > 0 {
			result.MissingAccounts = append(result.MissingAccounts, taxID)
			for _, code := range missing {
				result.Errors = append(result.Errors,
					fmt.Sprintf("entity %s is mapped to account %s which does not exist in the active chart of accounts", taxID, code))
			}
		}
	}

	for _, txn := range txns {
		expected := txn.NetAmount.Add(txn.TaxAmount)
		if txn.TotalAmount.Sub(expected).Abs().GreaterThan(docTotalTolerance) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("document %s of entity %s declares total %s but net+tax is %s",
					txn.DocumentNumber, txn.EntityTaxID,
					formatting.FormatAmount(txn.TotalAmount), formatting.FormatAmount(expected)))
		}
	}

	// Missing accounts are a hard stop regardless of force; missing
	// mappings only block un-forced runs.
	result.IsValid = len(result.MissingAccounts) == 0 && (force || len(result.MissingEntities) == 0)
	return result
}

// missingMappedAccounts returns every account code the mapping references
// (general account and per-document-type overrides) that has no active
// chart-of-accounts record.
func missingMappedAccounts(mapping domain.EntityAccountMapping, accounts map[string]domain.Account) []string {
	var missing []string
	if !mapping.Account.IsZero() {
		if _, ok := accounts[mapping.Account.Code]; !ok {
			missing = append(missing, mapping.Account.Code)
		}
	}
	for _, dt := range []domain.DocumentType{domain.Invoice, domain.ExemptInvoice, domain.CreditNote, domain.DebitNote, domain.Receipt, domain.FeeReceipt} {
		override, ok := mapping.OverrideFor(dt)
		if !ok || override.IsZero() {
			continue
		}
		if _, found := accounts[override.Code]; !found {
			missing = append(missing, override.Code)
		}
	}
	return missing
}

// distinctTaxIDs returns the distinct entity tax ids in first-seen order.
func distinctTaxIDs(txns []domain.SourceTransaction) []string {
	seen := make(map[string]struct{}, len(txns))
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		if _, ok := seen[txn.EntityTaxID]; !ok {
			seen[txn.EntityTaxID] = struct{}{}
			ids = append(ids, txn.EntityTaxID)
		}
	}
	return ids
}
