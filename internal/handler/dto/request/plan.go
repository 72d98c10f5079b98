package request

import "github.com/shopspring/decimal"

type CreatePlanRequest struct {
	Name            string           `json:"name" binding:"required"`
	Price           decimal.Decimal  `json:"price" binding:"required"`
	DurationDays    int              `json:"duration_days" binding:"required"`
	FixedCommission *decimal.Decimal `json:"fixed_commission"`
}
