package response

import (
	"affiliate-ledger/internal/usecase/queries"
)

type ExpirationResponse struct {
	Label    string `json:"label"`
	DaysLeft int    `json:"days_left"`
	Severity string `json:"severity"`
}

type SaleResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customer_name"`
	PlanName     string             `json:"plan_name"`
	Price        string             `json:"price"`
	Coupon       *string            `json:"coupon,omitempty"`
	Commission   string             `json:"commission"`
	Status       string             `json:"status"`
	ExpiresAt    *int64             `json:"expires_at,omitempty"`
	Expiration   ExpirationResponse `json:"expiration"`
	CreatedAt    int64              `json:"created_at"`
	UpdatedAt    int64              `json:"updated_at"`
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	var expiresAt *int64
	if v.ExpiresAt != nil {
		ts := v.ExpiresAt.Unix()
		expiresAt = &ts
	}
	return &SaleResponse{
		ID:           v.ID.String(),
		CustomerName: v.CustomerName,
		PlanName:     v.PlanName,
		Price:        v.Price.String(),
		Coupon:       v.Coupon,
		Commission:   v.Commission.String(),
		Status:       v.Status,
		ExpiresAt:    expiresAt,
		Expiration: ExpirationResponse{
			Label:    v.Expiration.Label,
			DaysLeft: v.Expiration.DaysLeft,
			Severity: v.Expiration.Severity,
		},
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromSaleList(items []*queries.SaleView) []*SaleResponse {
	res := make([]*SaleResponse, len(items))
	for i, it := range items {
		res[i] = FromSaleView(it)
	}
	return res
}
