package domain

import "github.com/shopspring/decimal"

// FinanceCategory classifies a finance record as money in or money out.
type FinanceCategory string

const (
	FinanceIncome  FinanceCategory = "INCOME"
	FinanceExpense FinanceCategory = "EXPENSE"
)

// Finance represents a single financial record tied to a company.
type Finance struct {
	FinanceID   string          `json:"financeID" db:"finance_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Category    FinanceCategory `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	CompanyID   string          `json:"companyID" db:"company_id"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	AuditFields
}
