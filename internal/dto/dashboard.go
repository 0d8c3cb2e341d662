package dto

import "github.com/craftscrm/crm_backend/internal/core/domain"

// EntityStats is one entity's dashboard counters.
type EntityStats struct {
	Total            int64 `json:"total"`
	Deactivated      int64 `json:"deactivated"`
	CreatedLastMonth int64 `json:"createdLastMonth"`
}

// DashboardSummary aggregates the per-entity counters plus the recent-items
// projections shown on the landing screen.
type DashboardSummary struct {
	Companies EntityStats `json:"companies"`
	Deals     EntityStats `json:"deals"`
	Finances  EntityStats `json:"finances"`
	Sales     EntityStats `json:"sales"`
	Products  EntityStats `json:"products"`
	Tasks     EntityStats `json:"tasks"`

	RecentCompanies []domain.Company `json:"recentCompanies"`
	RecentDeals     []domain.Deal    `json:"recentDeals"`
}
