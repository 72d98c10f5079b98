package sale

import (
	"errors"
	"strings"
	"time"

	"affiliate-ledger/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyPlanName     = errors.New("plan name cannot be empty")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidExtension  = errors.New("extension days must be positive")
)

// PlanSpec is a snapshot of the catalog plan at sale time. Sales keep the
// plan name and price as plain values, the catalog row may change or
// disappear later.
type PlanSpec struct {
	Name            string
	Price           decimal.Decimal
	DurationDays    int
	FixedCommission *decimal.Decimal
}

// AttributionSpec carries the verified, normalized coupon of the referring
// affiliate. Nil attribution produces an unattributed sale with zero
// commission.
type AttributionSpec struct {
	Coupon string
}

// Policy holds the commission defaults applied at sale creation.
type Policy struct {
	DefaultCommission   decimal.Decimal
	DefaultDurationDays int
}

type Services struct {
	Clock  clock.Clock
	Policy Policy
}

type Sale struct {
	id           uuid.UUID
	customerName string
	planName     string
	price        decimal.Decimal
	coupon       *string
	commission   decimal.Decimal
	status       Status
	expiresAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSale(
	services *Services,
	customerName string,
	plan PlanSpec,
	attribution *AttributionSpec,
) (*Sale, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if strings.TrimSpace(plan.Name) == "" {
		return nil, ErrEmptyPlanName
	}
	if plan.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	duration := plan.DurationDays
	if duration <= 0 {
		duration = services.Policy.DefaultDurationDays
	}

	commission := decimal.Zero
	var coupon *string
	if attribution != nil {
		code := attribution.Coupon
		coupon = &code
		commission = services.Policy.DefaultCommission
		if plan.FixedCommission != nil {
			commission = *plan.FixedCommission
		}
	}

	expiresAt := services.Clock.Now().UTC().AddDate(0, 0, duration)

	return &Sale{
		id:           uuid.New(),
		customerName: customerName,
		planName:     plan.Name,
		price:        plan.Price,
		coupon:       coupon,
		commission:   commission,
		status:       StatusActive,
		expiresAt:    &expiresAt,
	}, nil
}

func ReconstructSale(
	id uuid.UUID,
	customerName, planName string,
	price decimal.Decimal,
	coupon *string,
	commission decimal.Decimal,
	status Status,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Sale {
	return &Sale{
		id:           id,
		customerName: customerName,
		planName:     planName,
		price:        price,
		coupon:       coupon,
		commission:   commission,
		status:       status,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Renew extends the subscription and reactivates the sale. The new expiry is
// counted from the current expiry when it is still in the future, otherwise
// from now, so lapsed customers are not credited for the lapsed period.
func (s *Sale) Renew(extensionDays int, now time.Time) error {
	if extensionDays <= 0 {
		return ErrInvalidExtension
	}

	base := now.UTC()
	if s.expiresAt != nil && s.expiresAt.After(base) {
		base = s.expiresAt.UTC()
	}
	expiresAt := base.AddDate(0, 0, extensionDays)

	s.expiresAt = &expiresAt
	s.status = StatusActive
	return nil
}

// Cancel stops the commission from counting toward the balance going
// forward. Already-resolved withdrawals are never clawed back.
func (s *Sale) Cancel() {
	s.status = StatusCancelled
}

func (s *Sale) ChangeStatus(raw string) error {
	status, err := NewStatus(raw)
	if err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Sale) IsActive() bool {
	return s.status == StatusActive
}

func (s *Sale) ID() uuid.UUID               { return s.id }
func (s *Sale) CustomerName() string        { return s.customerName }
func (s *Sale) PlanName() string            { return s.planName }
func (s *Sale) Price() decimal.Decimal      { return s.price }
func (s *Sale) Coupon() *string             { return s.coupon }
func (s *Sale) Commission() decimal.Decimal { return s.commission }
func (s *Sale) Status() Status              { return s.status }
func (s *Sale) ExpiresAt() *time.Time       { return s.expiresAt }
func (s *Sale) CreatedAt() time.Time        { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time        { return s.updatedAt }
