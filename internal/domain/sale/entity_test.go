//go:build unit

package sale_test

import (
	"testing"
	"time"

	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleCase struct {
	name   string
	mutate func(*builder.SaleBuilder)
	errIs  error
}

func TestNewSale(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewSaleBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "John Doe", actual.CustomerName())
		assert.Equal(t, sale.StatusActive, actual.Status())
		require.NotNil(t, actual.Coupon())
		assert.Equal(t, "ZEUS10", *actual.Coupon())
		assert.True(t, actual.Commission().Equal(decimal.RequireFromString("15.00")))
		require.NotNil(t, actual.ExpiresAt())
		assert.Equal(t, b.Now.AddDate(0, 0, 30), *actual.ExpiresAt())
	})

	t.Run("validation", func(t *testing.T) {
		runSaleCases(t, []saleCase{
			{
				name:   "empty customer name",
				mutate: func(b *builder.SaleBuilder) { b.CustomerName = "  " },
				errIs:  sale.ErrEmptyCustomerName,
			},
			{
				name:   "empty plan name",
				mutate: func(b *builder.SaleBuilder) { b.PlanName = "" },
				errIs:  sale.ErrEmptyPlanName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.SaleBuilder) { b.Price = decimal.RequireFromString("-1") },
				errIs:  sale.ErrNegativePrice,
			},
			{
				name:   "free plan is fine",
				mutate: func(b *builder.SaleBuilder) { b.Price = decimal.Zero },
			},
		})
	})

	t.Run("unattributed sale earns nothing", func(t *testing.T) {
		actual, err := builder.NewSaleBuilder().WithCoupon("").BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.Coupon())
		assert.True(t, actual.Commission().IsZero())
	})

	t.Run("plan fixed commission overrides default", func(t *testing.T) {
		actual, err := builder.NewSaleBuilder().WithFixedCommission("40.00").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Commission().Equal(decimal.RequireFromString("40.00")))
	})

	t.Run("fixed commission ignored without attribution", func(t *testing.T) {
		actual, err := builder.NewSaleBuilder().WithCoupon("").WithFixedCommission("40.00").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Commission().IsZero())
	})

	t.Run("non-positive duration falls back to default", func(t *testing.T) {
		b := builder.NewSaleBuilder()
		b.DurationDays = 0
		b.DefaultDuration = 45

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.ExpiresAt())
		assert.Equal(t, b.Now.AddDate(0, 0, 45), *actual.ExpiresAt())
	})
}

func TestSaleRenew(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	build := func(t *testing.T, expiryOffsetDays int) *sale.Sale {
		t.Helper()
		b := builder.NewSaleBuilder()
		b.Now = now.AddDate(0, 0, expiryOffsetDays-b.DurationDays)
		s, err := b.BuildDomain()
		require.NoError(t, err)
		return s
	}

	t.Run("future expiry extends from the expiry", func(t *testing.T) {
		s := build(t, 5) // expires in 5 days
		oldExpiry := *s.ExpiresAt()

		require.NoError(t, s.Renew(30, now))

		assert.Equal(t, oldExpiry.AddDate(0, 0, 30), *s.ExpiresAt())
	})

	t.Run("lapsed expiry extends from now", func(t *testing.T) {
		s := build(t, -10) // expired 10 days ago

		require.NoError(t, s.Renew(30, now))

		assert.Equal(t, now.AddDate(0, 0, 30), *s.ExpiresAt())
	})

	t.Run("renew reactivates a cancelled sale", func(t *testing.T) {
		s := build(t, -10)
		s.Cancel()
		require.Equal(t, sale.StatusCancelled, s.Status())

		require.NoError(t, s.Renew(30, now))

		assert.Equal(t, sale.StatusActive, s.Status())
	})

	t.Run("non-positive extension rejected", func(t *testing.T) {
		s := build(t, 5)

		assert.ErrorIs(t, s.Renew(0, now), sale.ErrInvalidExtension)
		assert.ErrorIs(t, s.Renew(-7, now), sale.ErrInvalidExtension)
	})
}

func TestSaleStatus(t *testing.T) {
	t.Run("cancel is forward-only on the balance", func(t *testing.T) {
		s, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		s.Cancel()

		assert.Equal(t, sale.StatusCancelled, s.Status())
		assert.False(t, s.IsActive())
		// Commission stays on the record, the ledger just stops counting it.
		assert.True(t, s.Commission().Equal(decimal.RequireFromString("15.00")))
	})

	t.Run("change status validates the value", func(t *testing.T) {
		s, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.ChangeStatus("pending"))
		assert.Equal(t, sale.StatusPending, s.Status())

		assert.ErrorIs(t, s.ChangeStatus("paused"), sale.ErrInvalidStatus)
	})
}

func runSaleCases(t *testing.T, cases []saleCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSaleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
