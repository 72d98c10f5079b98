//go:build unit

package withdrawal_test

import (
	"testing"
	"time"

	"affiliate-ledger/internal/domain/withdrawal"
	"affiliate-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type withdrawalCase struct {
	name   string
	mutate func(*builder.WithdrawalBuilder)
	errIs  error
}

func TestNewWithdrawal(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewWithdrawalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "ZEUS10", actual.Coupon())
		assert.Equal(t, withdrawal.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Nil(t, actual.ResolvedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runWithdrawalCases(t, []withdrawalCase{
			{
				name:   "empty coupon",
				mutate: func(b *builder.WithdrawalBuilder) { b.Coupon = " " },
				errIs:  withdrawal.ErrEmptyCoupon,
			},
			{
				name:   "zero amount",
				mutate: func(b *builder.WithdrawalBuilder) { b.Amount = decimal.Zero },
				errIs:  withdrawal.ErrNonPositiveAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.WithdrawalBuilder) { b.Amount = decimal.RequireFromString("-5") },
				errIs:  withdrawal.ErrNonPositiveAmount,
			},
			{
				name:   "empty payout key",
				mutate: func(b *builder.WithdrawalBuilder) { b.PayoutKey = "" },
				errIs:  withdrawal.ErrEmptyPayoutKey,
			},
		})
	})
}

func TestWithdrawalResolve(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	t.Run("approve marks paid", func(t *testing.T) {
		w, err := builder.NewWithdrawalBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, w.Resolve(withdrawal.DecisionApprove, now))

		assert.Equal(t, withdrawal.StatusPaid, w.Status())
		require.NotNil(t, w.ResolvedAt())
		assert.Equal(t, now, *w.ResolvedAt())
		assert.True(t, w.CountsAgainstBalance())
	})

	t.Run("reject releases the held amount", func(t *testing.T) {
		w, err := builder.NewWithdrawalBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, w.Resolve(withdrawal.DecisionReject, now))

		assert.Equal(t, withdrawal.StatusRejected, w.Status())
		assert.False(t, w.CountsAgainstBalance())
	})

	t.Run("resolved records are immutable", func(t *testing.T) {
		w, err := builder.NewWithdrawalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, w.Resolve(withdrawal.DecisionApprove, now))

		err = w.Resolve(withdrawal.DecisionReject, now.Add(time.Hour))

		assert.ErrorIs(t, err, withdrawal.ErrAlreadyResolved)
		assert.Equal(t, withdrawal.StatusPaid, w.Status())
		assert.Equal(t, now, *w.ResolvedAt())
	})

	t.Run("pending holds funds", func(t *testing.T) {
		w, err := builder.NewWithdrawalBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, w.CountsAgainstBalance())
	})
}

func TestNewDecision(t *testing.T) {
	t.Run("valid decisions", func(t *testing.T) {
		approve, err := withdrawal.NewDecision("approve")
		require.NoError(t, err)
		assert.Equal(t, withdrawal.DecisionApprove, approve)

		reject, err := withdrawal.NewDecision("reject")
		require.NoError(t, err)
		assert.Equal(t, withdrawal.DecisionReject, reject)
	})

	t.Run("unknown decision", func(t *testing.T) {
		_, err := withdrawal.NewDecision("maybe")
		assert.ErrorIs(t, err, withdrawal.ErrInvalidDecision)
	})
}

func runWithdrawalCases(t *testing.T, cases []withdrawalCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewWithdrawalBuilder().With(c.mutate).BuildDomain()

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
