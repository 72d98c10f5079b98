package plan

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("plan name cannot be empty")
	ErrNegativePrice      = errors.New("plan price cannot be negative")
	ErrInvalidDuration    = errors.New("plan duration must be positive")
	ErrNegativeCommission = errors.New("plan commission cannot be negative")
)

// Plan is a catalog entry used to prefill sale price, duration and commission.
type Plan struct {
	id              uuid.UUID
	name            string
	price           decimal.Decimal
	durationDays    int
	fixedCommission *decimal.Decimal
	createdAt       time.Time
}

func NewPlan(name string, price decimal.Decimal, durationDays int, fixedCommission *decimal.Decimal) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if durationDays <= 0 {
		return nil, ErrInvalidDuration
	}
	if fixedCommission != nil && fixedCommission.IsNegative() {
		return nil, ErrNegativeCommission
	}

	return &Plan{
		id:              uuid.New(),
		name:            name,
		price:           price,
		durationDays:    durationDays,
		fixedCommission: fixedCommission,
	}, nil
}

func ReconstructPlan(
	id uuid.UUID,
	name string,
	price decimal.Decimal,
	durationDays int,
	fixedCommission *decimal.Decimal,
	createdAt time.Time,
) *Plan {
	return &Plan{
		id:              id,
		name:            name,
		price:           price,
		durationDays:    durationDays,
		fixedCommission: fixedCommission,
		createdAt:       createdAt,
	}
}

func (p *Plan) ID() uuid.UUID                     { return p.id }
func (p *Plan) Name() string                      { return p.name }
func (p *Plan) Price() decimal.Decimal            { return p.price }
func (p *Plan) DurationDays() int                 { return p.durationDays }
func (p *Plan) FixedCommission() *decimal.Decimal { return p.fixedCommission }
func (p *Plan) CreatedAt() time.Time              { return p.createdAt }
