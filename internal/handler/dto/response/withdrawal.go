package response

import (
	"affiliate-ledger/internal/usecase/queries"
)

type WithdrawalResponse struct {
	ID          string `json:"id"`
	Coupon      string `json:"coupon"`
	Amount      string `json:"amount"`
	PayoutKey   string `json:"payout_key"`
	Status      string `json:"status"`
	RequestedAt int64  `json:"requested_at"`
	ResolvedAt  *int64 `json:"resolved_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromWithdrawalView(v *queries.WithdrawalView) *WithdrawalResponse {
	var resolvedAt *int64
	if v.ResolvedAt != nil {
		ts := v.ResolvedAt.Unix()
		resolvedAt = &ts
	}
	return &WithdrawalResponse{
		ID:          v.ID.String(),
		Coupon:      v.Coupon,
		Amount:      v.Amount.String(),
		PayoutKey:   v.PayoutKey,
		Status:      v.Status,
		RequestedAt: v.RequestedAt.Unix(),
		ResolvedAt:  resolvedAt,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromWithdrawalList(items []*queries.WithdrawalView) []*WithdrawalResponse {
	res := make([]*WithdrawalResponse, len(items))
	for i, it := range items {
		res[i] = FromWithdrawalView(it)
	}
	return res
}
