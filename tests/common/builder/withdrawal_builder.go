//go:build unit || e2e

package builder

import (
	"time"

	domwithdrawal "affiliate-ledger/internal/domain/withdrawal"
	reqdto "affiliate-ledger/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type WithdrawalBuilder struct {
	Coupon    string
	Amount    decimal.Decimal
	PayoutKey string
	Now       time.Time
}

func NewWithdrawalBuilder() *WithdrawalBuilder {
	return &WithdrawalBuilder{
		Coupon:    "ZEUS10",
		Amount:    decimal.RequireFromString("20.00"),
		PayoutKey: "usdt:TAbcdef1234567890",
		Now:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *WithdrawalBuilder) With(mutate func(*WithdrawalBuilder)) *WithdrawalBuilder {
	mutate(b)
	return b
}

func (b *WithdrawalBuilder) BuildDomain() (*domwithdrawal.Withdrawal, error) {
	return domwithdrawal.NewWithdrawal(b.Coupon, b.Amount, b.PayoutKey, b.Now)
}

func (b *WithdrawalBuilder) BuildCreateRequestDTO() reqdto.CreateWithdrawalRequest {
	amount := b.Amount
	payoutKey := b.PayoutKey
	return reqdto.CreateWithdrawalRequest{
		Amount:    &amount,
		PayoutKey: &payoutKey,
	}
}
