package dto

import "github.com/shopspring/decimal"

// CreateProductRequest defines data for adding a product to the catalog.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Count    int             `json:"count" binding:"omitempty,min=0"`
	IsActive *bool           `json:"isActive"`
}

// UpdateProductRequest is a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Count    *int             `json:"count" binding:"omitempty,min=0"`
}
