package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines data for recording a sale.
type CreateSaleRequest struct {
	Name          string          `json:"name" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DateOfPayment time.Time       `json:"dateOfPayment" binding:"required"`
	ProductID     *string         `json:"productID" binding:"omitempty,uuid"`
	CompanyID     string          `json:"companyID" binding:"required,uuid"`
	IsActive      *bool           `json:"isActive"`
}

// UpdateSaleRequest is a partial update; nil fields are left unchanged.
type UpdateSaleRequest struct {
	Name          *string          `json:"name"`
	Quantity      *int             `json:"quantity" binding:"omitempty,min=1"`
	Amount        *decimal.Decimal `json:"amount"`
	DateOfPayment *time.Time       `json:"dateOfPayment"`
	ProductID     *string          `json:"productID" binding:"omitempty,uuid"`
	CompanyID     *string          `json:"companyID" binding:"omitempty,uuid"`
}
