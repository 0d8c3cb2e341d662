package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a completed sale of a product to a company.
type Sale struct {
	SaleID        string          `json:"saleID" db:"sale_id"`
	Name          string          `json:"name" db:"name"`
	Quantity      int             `json:"quantity" db:"quantity"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	DateOfPayment time.Time       `json:"dateOfPayment" db:"date_of_payment"`
	ProductID     *string         `json:"productID,omitempty" db:"product_id"` // nullable
	CompanyID     string          `json:"companyID" db:"company_id"`
	IsActive      bool            `json:"isActive" db:"is_active"`
	AuditFields
}
