package commands

import (
	"context"
	"time"

	"affiliate-ledger/internal/domain/affiliate"
	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/plan"
	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/domain/withdrawal"
	"affiliate-ledger/internal/infra/db"
	"affiliate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type AffiliateRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *affiliate.Affiliate) error
	Update(ctx context.Context, tx db.DBTX, a *affiliate.Affiliate) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shared.AffiliateSnapshot, error)
	FindByCoupon(ctx context.Context, coupon string) (*shared.AffiliateSnapshot, error)
	// FindByCouponForUpdate takes a row lock so concurrent withdrawal
	// requests for the same affiliate serialize.
	FindByCouponForUpdate(ctx context.Context, tx db.DBTX, coupon string) (*shared.AffiliateSnapshot, error)
}

type PlanRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *plan.Plan) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error)
}

type SaleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *sale.Sale) error
	Update(ctx context.Context, tx db.DBTX, s *sale.Sale) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*sale.Sale, error)
	ListRecordsByCoupon(ctx context.Context, tx db.DBTX, coupon string) ([]ledger.SaleRecord, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, tx db.DBTX, w *withdrawal.Withdrawal) error
	Update(ctx context.Context, tx db.DBTX, w *withdrawal.Withdrawal) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*withdrawal.Withdrawal, error)
	ListRecordsByCoupon(ctx context.Context, tx db.DBTX, coupon string) ([]ledger.WithdrawalRecord, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
