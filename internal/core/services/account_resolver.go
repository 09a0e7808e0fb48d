package services

import (
	"github.com/contalibre/contalibre_backend/internal/core/domain"
)

// AccountResolver maps an entity and document type to the ledger accounts a
// transaction should post against, given the company's central defaults.
type AccountResolver struct {
	defaults domain.CentralDefaults
}

// NewAccountResolver creates a resolver bound to one company's defaults.
func NewAccountResolver(defaults domain.CentralDefaults) *AccountResolver {
	return &AccountResolver{defaults: defaults}
}

// ResolveOperational returns the expense/income side account for a
// transaction. Precedence:
//  1. the entity's per-document-type override,
//  2. the entity's general account,
//  3. the global default for the direction.
// mapping may be nil when the entity has none (force runs).
func (r *AccountResolver) ResolveOperational(txn domain.SourceTransaction, mapping *domain.EntityAccountMapping, direction domain.Direction) domain.AccountRef {
	if mapping != nil {
		if override, ok := mapping.OverrideFor(txn.DocumentType); ok && !override.IsZero() {
			return override
		}
		if !mapping.Account.IsZero() {
			return mapping.Account
		}
	}
	if direction == domain.Sale {
		return r.defaults.DefaultIncome
	}
	return r.defaults.DefaultExpense
}

// ResolveCounterparty returns the payables/receivables account. The
// counterparty side is always a single consolidated account per direction,
// never entity-specific: entities map onto expense/income classification,
// not onto their own payable/receivable sub-ledger.
func (r *AccountResolver) ResolveCounterparty(direction domain.Direction) domain.AccountRef {
	if direction == domain.Sale {
		return r.defaults.Receivables
	}
	return r.defaults.Payables
}

// ResolveTax returns the input/output tax account for the direction.
func (r *AccountResolver) ResolveTax(direction domain.Direction) domain.AccountRef {
	if direction == domain.Sale {
		return r.defaults.OutputTax
	}
	return r.defaults.InputTax
}

// CostCenterFor returns the mapping's cost-center tag, if any.
func (r *AccountResolver) CostCenterFor(mapping *domain.EntityAccountMapping) string {
	if mapping == nil {
		return ""
	}
	return mapping.CostCenter
}
