package request

type CreateAffiliateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Coupon    string  `json:"coupon" binding:"required"`
	Contact   *string `json:"contact"`
	PayoutKey *string `json:"payout_key"`
}

type UpdateAffiliateRequest struct {
	Name      *string `json:"name"`
	Contact   *string `json:"contact"`
	PayoutKey *string `json:"payout_key"`
}
