// Package ledger computes affiliate balances from the current sale and
// withdrawal records. Nothing is accrued or snapshotted: every balance is a
// pure fold over the records as they stand, so cancelling a sale or
// rejecting a withdrawal is reflected immediately.
package ledger

import (
	"errors"

	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/domain/withdrawal"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount    = errors.New("requested amount must be positive")
	ErrAmountExceedsBalance = errors.New("requested amount exceeds available balance")
	ErrBelowMinimumPayout   = errors.New("available balance below minimum payout")
)

// SaleRecord is the slice of a sale the engine needs. Coupon is nil for
// unattributed sales.
type SaleRecord struct {
	Coupon     *string
	Status     sale.Status
	Commission decimal.Decimal
}

type WithdrawalRecord struct {
	Coupon string
	Status withdrawal.Status
	Amount decimal.Decimal
}

// Summary is an affiliate's position. AvailableBalance may be negative when
// sales were cancelled after a payout, callers clamp for display and for
// the maximum requestable amount.
type Summary struct {
	Coupon           string
	ActiveCount      int
	GrossCommission  decimal.Decimal
	CommittedPayout  decimal.Decimal
	AvailableBalance decimal.Decimal
}

// Withdrawable is the available balance clamped at zero.
func (s Summary) Withdrawable() decimal.Decimal {
	if s.AvailableBalance.IsNegative() {
		return decimal.Zero
	}
	return s.AvailableBalance
}

// Balance folds the records attributed to coupon into a Summary. Only
// active sales earn commission, every non-rejected withdrawal counts as
// committed (pending requests hold funds until resolved).
func Balance(coupon string, sales []SaleRecord, withdrawals []WithdrawalRecord) Summary {
	summary := Summary{
		Coupon:           coupon,
		GrossCommission:  decimal.Zero,
		CommittedPayout:  decimal.Zero,
		AvailableBalance: decimal.Zero,
	}

	for _, s := range sales {
		if s.Coupon == nil || *s.Coupon != coupon {
			continue
		}
		if s.Status != sale.StatusActive {
			continue
		}
		summary.ActiveCount++
		summary.GrossCommission = summary.GrossCommission.Add(s.Commission)
	}

	for _, w := range withdrawals {
		if w.Coupon != coupon || w.Status == withdrawal.StatusRejected {
			continue
		}
		summary.CommittedPayout = summary.CommittedPayout.Add(w.Amount)
	}

	summary.AvailableBalance = summary.GrossCommission.Sub(summary.CommittedPayout)
	return summary
}

// ValidateRequest gates a withdrawal request against the current position.
func ValidateRequest(amount decimal.Decimal, summary Summary, minPayout decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	available := summary.Withdrawable()
	if available.LessThan(minPayout) {
		return ErrBelowMinimumPayout
	}
	if amount.GreaterThan(available) {
		return ErrAmountExceedsBalance
	}

	return nil
}
