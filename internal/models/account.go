package models

// Account mirrors one row of the accounts table (chart of accounts).
type Account struct {
	CompanyID string `json:"companyID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// CentralDefaults mirrors one row of the central_defaults table: the
// company's global fallback accounts, stored as code/name column pairs.
type CentralDefaults struct {
	CompanyID          string `json:"companyID"`
	DefaultExpenseCode string `json:"defaultExpenseCode"`
	DefaultExpenseName string `json:"defaultExpenseName"`
	DefaultIncomeCode  string `json:"defaultIncomeCode"`
	DefaultIncomeName  string `json:"defaultIncomeName"`
	InputTaxCode       string `json:"inputTaxCode"`
	InputTaxName       string `json:"inputTaxName"`
	OutputTaxCode      string `json:"outputTaxCode"`
	OutputTaxName      string `json:"outputTaxName"`
	PayablesCode       string `json:"payablesCode"`
	PayablesName       string `json:"payablesName"`
	ReceivablesCode    string `json:"receivablesCode"`
	ReceivablesName    string `json:"receivablesName"`
}
