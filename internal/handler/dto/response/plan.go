package response

import (
	"affiliate-ledger/internal/usecase/queries"
)

type PlanResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           string  `json:"price"`
	DurationDays    int     `json:"duration_days"`
	FixedCommission *string `json:"fixed_commission,omitempty"`
	CreatedAt       int64   `json:"created_at"`
}

func FromPlanView(v *queries.PlanView) *PlanResponse {
	var fixed *string
	if v.FixedCommission != nil {
		s := v.FixedCommission.String()
		fixed = &s
	}
	return &PlanResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Price:           v.Price.String(),
		DurationDays:    v.DurationDays,
		FixedCommission: fixed,
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

func FromPlanList(items []*queries.PlanView) []*PlanResponse {
	res := make([]*PlanResponse, len(items))
	for i, it := range items {
		res[i] = FromPlanView(it)
	}
	return res
}
