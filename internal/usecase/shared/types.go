package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type AffiliateSnapshot struct {
	ID        uuid.UUID
	Name      string
	Coupon    string
	Contact   *string
	PayoutKey *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PlanSnapshot struct {
	ID              uuid.UUID
	Name            string
	Price           decimal.Decimal
	DurationDays    int
	FixedCommission *decimal.Decimal
	CreatedAt       time.Time
}
