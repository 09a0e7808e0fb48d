package mapping

import (
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/contalibre/contalibre_backend/internal/models"
)

// ToDomainAccount converts a db account row to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		CompanyID: m.CompanyID,
		Code:      m.Code,
		Name:      m.Name,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainCentralDefaults converts a central_defaults row to the domain struct.
func ToDomainCentralDefaults(m models.CentralDefaults) domain.CentralDefaults {
	return domain.CentralDefaults{
		DefaultExpense: domain.AccountRef{Code: m.DefaultExpenseCode, Name: m.DefaultExpenseName},
		DefaultIncome:  domain.AccountRef{Code: m.DefaultIncomeCode, Name: m.DefaultIncomeName},
		InputTax:       domain.AccountRef{Code: m.InputTaxCode, Name: m.InputTaxName},
		OutputTax:      domain.AccountRef{Code: m.OutputTaxCode, Name: m.OutputTaxName},
		Payables:       domain.AccountRef{Code: m.PayablesCode, Name: m.PayablesName},
		Receivables:    domain.AccountRef{Code: m.ReceivablesCode, Name: m.ReceivablesName},
	}
}
