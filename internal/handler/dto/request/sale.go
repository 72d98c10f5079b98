package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest either references a catalog plan by id or carries the
// plan fields inline.
type CreateSaleRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	PlanID       *uuid.UUID       `json:"plan_id"`
	PlanName     *string          `json:"plan_name"`
	Price        *decimal.Decimal `json:"price"`
	DurationDays *int             `json:"duration_days"`
	Coupon       *string          `json:"coupon"`
}

type RenewSaleRequest struct {
	ExtensionDays int `json:"extension_days" binding:"required"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
