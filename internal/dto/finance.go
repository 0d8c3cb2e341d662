package dto

import "github.com/shopspring/decimal"

// CreateFinanceRequest defines data for creating a finance record.
type CreateFinanceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CompanyID   string          `json:"companyID" binding:"required,uuid"`
	IsActive    *bool           `json:"isActive"`
}

// UpdateFinanceRequest is a partial update; nil fields are left unchanged.
type UpdateFinanceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount      *decimal.Decimal `json:"amount"`
	CompanyID   *string          `json:"companyID" binding:"omitempty,uuid"`
}
