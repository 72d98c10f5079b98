package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type AffiliateView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Coupon    string    `json:"coupon"`
	Contact   *string   `json:"contact,omitempty"`
	PayoutKey *string   `json:"payout_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	DurationDays    int              `json:"duration_days"`
	FixedCommission *decimal.Decimal `json:"fixed_commission,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type ExpirationView struct {
	Label    string `json:"label"`
	DaysLeft int    `json:"days_left"`
	Severity string `json:"severity"`
}

type SaleView struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customer_name"`
	PlanName     string          `json:"plan_name"`
	Price        decimal.Decimal `json:"price"`
	Coupon       *string         `json:"coupon,omitempty"`
	Commission   decimal.Decimal `json:"commission"`
	Status       string          `json:"status"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	Expiration   ExpirationView  `json:"expiration"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type WithdrawalView struct {
	ID          uuid.UUID       `json:"id"`
	Coupon      string          `json:"coupon"`
	Amount      decimal.Decimal `json:"amount"`
	PayoutKey   string          `json:"payout_key"`
	Status      string          `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BalanceView struct {
	Coupon           string          `json:"coupon"`
	ActiveCustomers  int             `json:"active_customers"`
	GrossCommission  decimal.Decimal `json:"gross_commission"`
	CommittedPayout  decimal.Decimal `json:"committed_payout"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

type CommissionReportRow struct {
	AffiliateID      uuid.UUID       `json:"affiliate_id"`
	Name             string          `json:"name"`
	Coupon           string          `json:"coupon"`
	ActiveCustomers  int             `json:"active_customers"`
	GrossCommission  decimal.Decimal `json:"gross_commission"`
	CommittedPayout  decimal.Decimal `json:"committed_payout"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}
