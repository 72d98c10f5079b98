package request

import "github.com/shopspring/decimal"

// Amount is a pointer so a missing field fails binding instead of
// defaulting to zero.
type CreateWithdrawalRequest struct {
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	PayoutKey *string          `json:"payout_key"`
}

type ResolveWithdrawalRequest struct {
	Decision string `json:"decision" binding:"required"`
}
