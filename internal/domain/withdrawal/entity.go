package withdrawal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCoupon       = errors.New("coupon cannot be empty")
	ErrEmptyPayoutKey    = errors.New("payout key cannot be empty")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrAlreadyResolved   = errors.New("withdrawal already resolved")
)

type Withdrawal struct {
	id          uuid.UUID
	coupon      string
	amount      decimal.Decimal
	payoutKey   string
	status      Status
	requestedAt time.Time
	resolvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewWithdrawal(coupon string, amount decimal.Decimal, payoutKey string, now time.Time) (*Withdrawal, error) {
	if strings.TrimSpace(coupon) == "" {
		return nil, ErrEmptyCoupon
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if strings.TrimSpace(payoutKey) == "" {
		return nil, ErrEmptyPayoutKey
	}

	return &Withdrawal{
		id:          uuid.New(),
		coupon:      coupon,
		amount:      amount,
		payoutKey:   payoutKey,
		status:      StatusPending,
		requestedAt: now.UTC(),
	}, nil
}

func ReconstructWithdrawal(
	id uuid.UUID,
	coupon string,
	amount decimal.Decimal,
	payoutKey string,
	status Status,
	requestedAt time.Time,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Withdrawal {
	return &Withdrawal{
		id:          id,
		coupon:      coupon,
		amount:      amount,
		payoutKey:   payoutKey,
		status:      status,
		requestedAt: requestedAt,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Resolve moves a pending request to its terminal state. Paid and rejected
// records are immutable, resolving twice fails no matter the decision.
func (w *Withdrawal) Resolve(decision Decision, now time.Time) error {
	if w.status != StatusPending {
		return ErrAlreadyResolved
	}

	switch decision {
	case DecisionApprove:
		w.status = StatusPaid
	case DecisionReject:
		w.status = StatusRejected
	default:
		return ErrInvalidDecision
	}

	resolvedAt := now.UTC()
	w.resolvedAt = &resolvedAt
	return nil
}

func (w *Withdrawal) IsPending() bool {
	return w.status == StatusPending
}

// CountsAgainstBalance reports whether the amount is still held against the
// affiliate's available balance. Pending holds funds, only rejection
// releases them.
func (w *Withdrawal) CountsAgainstBalance() bool {
	return w.status != StatusRejected
}

func (w *Withdrawal) ID() uuid.UUID           { return w.id }
func (w *Withdrawal) Coupon() string          { return w.coupon }
func (w *Withdrawal) Amount() decimal.Decimal { return w.amount }
func (w *Withdrawal) PayoutKey() string       { return w.payoutKey }
func (w *Withdrawal) Status() Status          { return w.status }
func (w *Withdrawal) RequestedAt() time.Time  { return w.requestedAt }
func (w *Withdrawal) ResolvedAt() *time.Time  { return w.resolvedAt }
func (w *Withdrawal) CreatedAt() time.Time    { return w.createdAt }
func (w *Withdrawal) UpdatedAt() time.Time    { return w.updatedAt }
