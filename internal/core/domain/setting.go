package domain

import "time"

// Well-known setting keys.
const (
	SettingPaginationSize = "pagination_size"
	SettingCurrency       = "currency"
)

// DefaultPaginationSize is used when the pagination_size setting is missing or unparsable.
const DefaultPaginationSize = 10

// Setting is one row of the key-value configuration store. Keys are unique.
type Setting struct {
	Key           string    `json:"key" db:"key"`
	Value         string    `json:"value" db:"value"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy string    `json:"lastUpdatedBy" db:"last_updated_by"`
}
