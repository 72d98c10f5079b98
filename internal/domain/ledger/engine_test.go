//go:build unit

package ledger_test

import (
	"testing"

	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/domain/withdrawal"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saleRecord(coupon string, status sale.Status, commission string) ledger.SaleRecord {
	rec := ledger.SaleRecord{Status: status, Commission: dec(commission)}
	if coupon != "" {
		rec.Coupon = &coupon
	}
	return rec
}

func TestBalance(t *testing.T) {
	t.Run("commission minus committed payouts", func(t *testing.T) {
		sales := []ledger.SaleRecord{
			saleRecord("ZEUS10", sale.StatusActive, "15.00"),
			saleRecord("ZEUS10", sale.StatusActive, "15.00"),
			saleRecord("ZEUS10", sale.StatusCancelled, "15.00"),
			saleRecord("OTHER", sale.StatusActive, "99.00"),
			saleRecord("", sale.StatusActive, "0"),
		}
		withdrawals := []ledger.WithdrawalRecord{
			{Coupon: "ZEUS10", Status: withdrawal.StatusPending, Amount: dec("10.00")},
			{Coupon: "ZEUS10", Status: withdrawal.StatusRejected, Amount: dec("50.00")},
			{Coupon: "OTHER", Status: withdrawal.StatusPaid, Amount: dec("99.00")},
		}

		got := ledger.Balance("ZEUS10", sales, withdrawals)

		want := ledger.Summary{
			Coupon:           "ZEUS10",
			ActiveCount:      2,
			GrossCommission:  dec("30.00"),
			CommittedPayout:  dec("10.00"),
			AvailableBalance: dec("20.00"),
		}
		if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
			t.Errorf("Balance() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no records", func(t *testing.T) {
		got := ledger.Balance("ZEUS10", nil, nil)

		assert.Equal(t, 0, got.ActiveCount)
		assert.True(t, got.GrossCommission.IsZero())
		assert.True(t, got.AvailableBalance.IsZero())
	})

	t.Run("paid and pending both hold funds", func(t *testing.T) {
		sales := []ledger.SaleRecord{
			saleRecord("ZEUS10", sale.StatusActive, "30.00"),
		}
		withdrawals := []ledger.WithdrawalRecord{
			{Coupon: "ZEUS10", Status: withdrawal.StatusPaid, Amount: dec("10.00")},
			{Coupon: "ZEUS10", Status: withdrawal.StatusPending, Amount: dec("10.00")},
		}

		got := ledger.Balance("ZEUS10", sales, withdrawals)

		assert.True(t, got.AvailableBalance.Equal(dec("10.00")))
	})

	t.Run("cancellation after payout goes negative", func(t *testing.T) {
		sales := []ledger.SaleRecord{
			saleRecord("ZEUS10", sale.StatusCancelled, "30.00"),
		}
		withdrawals := []ledger.WithdrawalRecord{
			{Coupon: "ZEUS10", Status: withdrawal.StatusPaid, Amount: dec("30.00")},
		}

		got := ledger.Balance("ZEUS10", sales, withdrawals)

		assert.True(t, got.AvailableBalance.Equal(dec("-30.00")))
		assert.True(t, got.Withdrawable().IsZero())
	})
}

func TestValidateRequest(t *testing.T) {
	minPayout := dec("10")

	summaryWith := func(available string) ledger.Summary {
		return ledger.Summary{
			Coupon:           "ZEUS10",
			GrossCommission:  dec(available),
			AvailableBalance: dec(available),
		}
	}

	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, ledger.ValidateRequest(dec("20.00"), summaryWith("20.00"), minPayout))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		assert.ErrorIs(t, ledger.ValidateRequest(decimal.Zero, summaryWith("20.00"), minPayout), ledger.ErrNonPositiveAmount)
		assert.ErrorIs(t, ledger.ValidateRequest(dec("-5"), summaryWith("20.00"), minPayout), ledger.ErrNonPositiveAmount)
	})

	t.Run("balance below minimum payout", func(t *testing.T) {
		err := ledger.ValidateRequest(dec("5.00"), summaryWith("9.99"), minPayout)
		assert.ErrorIs(t, err, ledger.ErrBelowMinimumPayout)
	})

	t.Run("amount exceeds available", func(t *testing.T) {
		err := ledger.ValidateRequest(dec("25.00"), summaryWith("20.00"), minPayout)
		assert.ErrorIs(t, err, ledger.ErrAmountExceedsBalance)
	})

	t.Run("negative balance cannot be withdrawn", func(t *testing.T) {
		summary := ledger.Summary{Coupon: "ZEUS10", AvailableBalance: dec("-30.00")}
		err := ledger.ValidateRequest(dec("1.00"), summary, minPayout)
		assert.ErrorIs(t, err, ledger.ErrBelowMinimumPayout)
	})

	t.Run("full balance withdrawal then nothing left", func(t *testing.T) {
		summary := summaryWith("20.00")
		require.NoError(t, ledger.ValidateRequest(dec("20.00"), summary, minPayout))

		// After the request is committed the available drops to zero.
		drained := ledger.Balance("ZEUS10",
			[]ledger.SaleRecord{saleRecord("ZEUS10", sale.StatusActive, "20.00")},
			[]ledger.WithdrawalRecord{{Coupon: "ZEUS10", Status: withdrawal.StatusPending, Amount: dec("20.00")}},
		)
		assert.ErrorIs(t, ledger.ValidateRequest(dec("1.00"), drained, minPayout), ledger.ErrBelowMinimumPayout)
	})
}
