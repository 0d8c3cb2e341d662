package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest defines data for creating a deal. The dealtimes struct
// rule rejects ranges where the end precedes the start.
type CreateDealRequest struct {
	Name      string          `json:"name" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	StartTime time.Time       `json:"startTime" binding:"required"`
	EndTime   time.Time       `json:"endTime" binding:"required"`
	CompanyID string          `json:"companyID" binding:"required,uuid"`
	IsActive  *bool           `json:"isActive"` // defaults to true when omitted
}

// UpdateDealRequest is a partial update; nil fields are left unchanged.
type UpdateDealRequest struct {
	Name      *string          `json:"name"`
	Amount    *decimal.Decimal `json:"amount"`
	StartTime *time.Time       `json:"startTime"`
	EndTime   *time.Time       `json:"endTime"`
	CompanyID *string          `json:"companyID" binding:"omitempty,uuid"`
}

// CreateDealTermRequest defines data for attaching a term to a deal.
type CreateDealTermRequest struct {
	Body string `json:"body" binding:"required"`
}
