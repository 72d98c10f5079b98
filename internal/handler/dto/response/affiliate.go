package response

import (
	"affiliate-ledger/internal/usecase/queries"
)

type AffiliateResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Coupon    string  `json:"coupon"`
	Contact   *string `json:"contact,omitempty"`
	PayoutKey *string `json:"payout_key,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func FromAffiliateView(v *queries.AffiliateView) *AffiliateResponse {
	return &AffiliateResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Coupon:    v.Coupon,
		Contact:   v.Contact,
		PayoutKey: v.PayoutKey,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromAffiliateList(items []*queries.AffiliateView) []*AffiliateResponse {
	res := make([]*AffiliateResponse, len(items))
	for i, it := range items {
		res[i] = FromAffiliateView(it)
	}
	return res
}
