package domain

// CentralDefaults holds the company's global fallback accounts.
// Operational fallbacks (expense/income) apply per direction when an entity
// has no mapping; tax and counterparty accounts are always direction-global.
type CentralDefaults struct {
	DefaultExpense AccountRef `json:"defaultExpense"` // Purchase fallback
	DefaultIncome  AccountRef `json:"defaultIncome"`  // Sale fallback
	InputTax       AccountRef `json:"inputTax"`
	OutputTax      AccountRef `json:"outputTax"`
	Payables       AccountRef `json:"payables"`
	Receivables    AccountRef `json:"receivables"`
}
