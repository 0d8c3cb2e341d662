package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal represents a commercial deal negotiated with a company.
type Deal struct {
	DealID    string          `json:"dealID" db:"deal_id"`
	Name      string          `json:"name" db:"name"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	StartTime time.Time       `json:"startTime" db:"start_time"`
	EndTime   time.Time       `json:"endTime" db:"end_time"`
	CompanyID string          `json:"companyID" db:"company_id"`
	IsActive  bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// DealTerm is a contractual term attached to a deal. A deal that still owns
// terms cannot be deleted.
type DealTerm struct {
	TermID string `json:"termID" db:"term_id"`
	DealID string `json:"dealID" db:"deal_id"`
	Body   string `json:"body" db:"body"`
	AuditFields
}
