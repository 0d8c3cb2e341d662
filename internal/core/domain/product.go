package domain

import "github.com/shopspring/decimal"

// Product represents an item in the product catalog.
type Product struct {
	ProductID string          `json:"productID" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Count     int             `json:"count" db:"count"`
	IsActive  bool            `json:"isActive" db:"is_active"`
	AuditFields
}
