package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"affiliate-ledger/internal/domain/affiliate"
	"affiliate-ledger/internal/domain/sale"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"
	"affiliate-ledger/internal/pkg/clock"
	"affiliate-ledger/internal/pkg/errs"
	"affiliate-ledger/internal/usecase/queries"
	"affiliate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrSaleNotFound   = errs.New("sale not found")
	ErrSaleValidation = errs.New("sale validation failed")
)

type SaleCommands interface {
	CreateSale(ctx context.Context, req reqdto.CreateSaleRequest) (*queries.SaleView, error)
	RenewSale(ctx context.Context, id uuid.UUID, req reqdto.RenewSaleRequest) (*queries.SaleView, error)
	CancelSale(ctx context.Context, id uuid.UUID) (*queries.SaleView, error)
	ChangeSaleStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSaleStatusRequest) (*queries.SaleView, error)
	DeleteSale(ctx context.Context, id uuid.UUID) error
}

type saleCommandsImpl struct {
	saleRepo         SaleRepository
	planRepo         PlanRepository
	affiliateRepo    AffiliateRepository
	notificationRepo NotificationRepository
	saleQueries      queries.SaleQueries
	services         *sale.Services
	pool             *pgxpool.Pool
	clock            clock.Clock
}

func NewSaleCommands(
	saleRepo SaleRepository,
	planRepo PlanRepository,
	affiliateRepo AffiliateRepository,
	notificationRepo NotificationRepository,
	saleQueries queries.SaleQueries,
	services *sale.Services,
	pool *pgxpool.Pool,
	clk clock.Clock,
) SaleCommands {
	return &saleCommandsImpl{
		saleRepo:         saleRepo,
		planRepo:         planRepo,
		affiliateRepo:    affiliateRepo,
		notificationRepo: notificationRepo,
		saleQueries:      saleQueries,
		services:         services,
		pool:             pool,
		clock:            clk,
	}
}

func (c *saleCommandsImpl) CreateSale(ctx context.Context, req reqdto.CreateSaleRequest) (*queries.SaleView, error) {
	planSpec, err := c.resolvePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	attribution := c.resolveAttribution(ctx, req.Coupon)

	entity, err := sale.NewSale(c.services, req.CustomerName, planSpec, attribution)
	if err != nil {
		return nil, errs.Mark(err, ErrSaleValidation)
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.saleRepo.Create(ctx, tx, entity); err != nil {
			return struct{}{}, err
		}
		payload, _ := json.Marshal(map[string]any{
			"sale_id":       entity.ID(),
			"customer_name": entity.CustomerName(),
			"plan_name":     entity.PlanName(),
		})
		return struct{}{}, c.notificationRepo.CreateJob(ctx, tx, "email", "sale_created", payload, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return c.saleQueries.GetByID(ctx, entity.ID())
}

func (c *saleCommandsImpl) RenewSale(ctx context.Context, id uuid.UUID, req reqdto.RenewSaleRequest) (*queries.SaleView, error) {
	return c.mutateSale(ctx, id, func(s *sale.Sale) error {
		if err := s.Renew(req.ExtensionDays, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrSaleValidation)
		}
		return nil
	})
}

func (c *saleCommandsImpl) CancelSale(ctx context.Context, id uuid.UUID) (*queries.SaleView, error) {
	return c.mutateSale(ctx, id, func(s *sale.Sale) error {
		s.Cancel()
		return nil
	})
}

func (c *saleCommandsImpl) ChangeSaleStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSaleStatusRequest) (*queries.SaleView, error) {
	return c.mutateSale(ctx, id, func(s *sale.Sale) error {
		if err := s.ChangeStatus(req.Status); err != nil {
			return errs.Mark(err, ErrSaleValidation)
		}
		return nil
	})
}

func (c *saleCommandsImpl) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if err := c.saleRepo.Delete(ctx, c.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrSaleNotFound)
		}
		return err
	}
	return nil
}

// mutateSale loads the sale under a row lock, applies fn and writes the
// result back, all in one transaction.
func (c *saleCommandsImpl) mutateSale(ctx context.Context, id uuid.UUID, fn func(*sale.Sale) error) (*queries.SaleView, error) {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		entity, err := c.saleRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, ErrSaleNotFound)
			}
			return struct{}{}, err
		}
		if err := fn(entity); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.saleRepo.Update(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	return c.saleQueries.GetByID(ctx, id)
}

// resolvePlan prefills from the catalog when a plan id is given, otherwise
// the request must carry the plan fields inline.
func (c *saleCommandsImpl) resolvePlan(ctx context.Context, req reqdto.CreateSaleRequest) (sale.PlanSpec, error) {
	if req.PlanID != nil {
		snapshot, err := c.planRepo.FindByID(ctx, *req.PlanID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return sale.PlanSpec{}, errs.Mark(err, ErrPlanNotFound)
			}
			return sale.PlanSpec{}, err
		}
		return sale.PlanSpec{
			Name:            snapshot.Name,
			Price:           snapshot.Price,
			DurationDays:    snapshot.DurationDays,
			FixedCommission: snapshot.FixedCommission,
		}, nil
	}

	spec := sale.PlanSpec{
		DurationDays: 0, // factory applies the default duration
	}
	if req.PlanName != nil {
		spec.Name = *req.PlanName
	}
	spec.Price = decimal.Zero
	if req.Price != nil {
		spec.Price = *req.Price
	}
	if req.DurationDays != nil {
		spec.DurationDays = *req.DurationDays
	}
	return spec, nil
}

// resolveAttribution verifies the coupon against the affiliate register.
// Unknown or malformed coupons demote the sale to unattributed instead of
// failing it.
func (c *saleCommandsImpl) resolveAttribution(ctx context.Context, rawCoupon *string) *sale.AttributionSpec {
	if rawCoupon == nil || *rawCoupon == "" {
		return nil
	}

	code, err := affiliate.NewCoupon(*rawCoupon)
	if err != nil {
		slog.Warn("malformed coupon on sale, creating unattributed", "coupon", *rawCoupon)
		return nil
	}

	snapshot, err := c.affiliateRepo.FindByCoupon(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("unknown coupon on sale, creating unattributed", "coupon", code.String())
			return nil
		}
		slog.Error("affiliate lookup failed, creating unattributed sale", "coupon", code.String(), "error", err.Error())
		return nil
	}

	return &sale.AttributionSpec{Coupon: snapshot.Coupon}
}
