//go:build unit || e2e

package builder

import (
	"time"

	domsale "affiliate-ledger/internal/domain/sale"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

type SaleBuilder struct {
	CustomerName      string
	PlanName          string
	Price             decimal.Decimal
	DurationDays      int
	FixedCommission   *decimal.Decimal
	Coupon            string // empty means unattributed
	DefaultCommission decimal.Decimal
	DefaultDuration   int
	Now               time.Time
}

func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{
		CustomerName:      "John Doe",
		PlanName:          "Basic",
		Price:             decimal.RequireFromString("25.00"),
		DurationDays:      30,
		Coupon:            "ZEUS10",
		DefaultCommission: decimal.RequireFromString("15.00"),
		DefaultDuration:   30,
		Now:               time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

func (b *SaleBuilder) WithCoupon(coupon string) *SaleBuilder {
	b.Coupon = coupon
	return b
}

func (b *SaleBuilder) WithFixedCommission(amount string) *SaleBuilder {
	d := decimal.RequireFromString(amount)
	b.FixedCommission = &d
	return b
}

func (b *SaleBuilder) Services() *domsale.Services {
	return &domsale.Services{
		Clock: clock.NewMockClock(b.Now),
		Policy: domsale.Policy{
			DefaultCommission:   b.DefaultCommission,
			DefaultDurationDays: b.DefaultDuration,
		},
	}
}

func (b *SaleBuilder) BuildDomain() (*domsale.Sale, error) {
	var attribution *domsale.AttributionSpec
	if b.Coupon != "" {
		attribution = &domsale.AttributionSpec{Coupon: b.Coupon}
	}
	return domsale.NewSale(b.Services(), b.CustomerName, domsale.PlanSpec{
		Name:            b.PlanName,
		Price:           b.Price,
		DurationDays:    b.DurationDays,
		FixedCommission: b.FixedCommission,
	}, attribution)
}

func (b *SaleBuilder) BuildCreateRequestDTO() reqdto.CreateSaleRequest {
	req := reqdto.CreateSaleRequest{
		CustomerName: b.CustomerName,
		PlanName:     &b.PlanName,
		Price:        &b.Price,
		DurationDays: &b.DurationDays,
	}
	if b.Coupon != "" {
		coupon := b.Coupon
		req.Coupon = &coupon
	}
	return req
}
