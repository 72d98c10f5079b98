package commands

import (
	"context"
	"encoding/json"

	"affiliate-ledger/internal/domain/affiliate"
	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/withdrawal"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"
	"affiliate-ledger/internal/pkg/clock"
	"affiliate-ledger/internal/pkg/config"
	"affiliate-ledger/internal/pkg/errs"
	"affiliate-ledger/internal/pkg/patch"
	"affiliate-ledger/internal/usecase/queries"
	"affiliate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWithdrawalNotFound   = errs.New("withdrawal not found")
	ErrInsufficientBalance  = errs.New("insufficient balance")
	ErrInvalidTransition    = errs.New("invalid withdrawal transition")
	ErrWithdrawalValidation = errs.New("withdrawal validation failed")
)

type WithdrawalCommands interface {
	RequestWithdrawal(ctx context.Context, coupon string, req reqdto.CreateWithdrawalRequest) (*queries.WithdrawalView, error)
	ResolveWithdrawal(ctx context.Context, id uuid.UUID, req reqdto.ResolveWithdrawalRequest) (*queries.WithdrawalView, error)
}

type withdrawalCommandsImpl struct {
	withdrawalRepo    WithdrawalRepository
	saleRepo          SaleRepository
	affiliateRepo     AffiliateRepository
	notificationRepo  NotificationRepository
	withdrawalQueries queries.WithdrawalQueries
	cfg               config.LedgerConfig
	pool              *pgxpool.Pool
	clock             clock.Clock
}

func NewWithdrawalCommands(
	withdrawalRepo WithdrawalRepository,
	saleRepo SaleRepository,
	affiliateRepo AffiliateRepository,
	notificationRepo NotificationRepository,
	withdrawalQueries queries.WithdrawalQueries,
	cfg config.LedgerConfig,
	pool *pgxpool.Pool,
	clk clock.Clock,
) WithdrawalCommands {
	return &withdrawalCommandsImpl{
		withdrawalRepo:    withdrawalRepo,
		saleRepo:          saleRepo,
		affiliateRepo:     affiliateRepo,
		notificationRepo:  notificationRepo,
		withdrawalQueries: withdrawalQueries,
		cfg:               cfg,
		pool:              pool,
		clock:             clk,
	}
}

// RequestWithdrawal creates a pending withdrawal after re-validating the
// balance inside the transaction. The affiliate row is locked first so two
// concurrent requests against the same balance serialize, the second sees
// the first one's pending amount and fails the balance check instead of
// overdrawing.
func (c *withdrawalCommandsImpl) RequestWithdrawal(ctx context.Context, coupon string, req reqdto.CreateWithdrawalRequest) (*queries.WithdrawalView, error) {
	code, err := affiliate.NewCoupon(coupon)
	if err != nil {
		return nil, errs.Mark(err, ErrAffiliateNotFound)
	}
	if req.Amount == nil {
		return nil, errs.Mark(errs.New("amount is required"), ErrWithdrawalValidation)
	}

	entity, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*withdrawal.Withdrawal, error) {
		snapshot, err := c.affiliateRepo.FindByCouponForUpdate(ctx, tx, code.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrAffiliateNotFound)
			}
			return nil, err
		}

		sales, err := c.saleRepo.ListRecordsByCoupon(ctx, tx, snapshot.Coupon)
		if err != nil {
			return nil, err
		}
		withdrawals, err := c.withdrawalRepo.ListRecordsByCoupon(ctx, tx, snapshot.Coupon)
		if err != nil {
			return nil, err
		}

		summary := ledger.Balance(snapshot.Coupon, sales, withdrawals)
		if err := ledger.ValidateRequest(*req.Amount, summary, c.cfg.MinPayout); err != nil {
			return nil, errs.Mark(err, ErrInsufficientBalance)
		}

		payoutKey := patch.Coalesce(req.PayoutKey, patch.Coalesce(snapshot.PayoutKey, ""))
		w, err := withdrawal.NewWithdrawal(snapshot.Coupon, *req.Amount, payoutKey, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrWithdrawalValidation)
		}

		if err := c.withdrawalRepo.Create(ctx, tx, w); err != nil {
			return nil, err
		}

		payload, _ := json.Marshal(map[string]any{
			"withdrawal_id": w.ID(),
			"coupon":        w.Coupon(),
			"amount":        w.Amount(),
		})
		if err := c.notificationRepo.CreateJob(ctx, tx, "email", "withdrawal_requested", payload, c.clock.Now()); err != nil {
			return nil, err
		}

		return w, nil
	})
	if err != nil {
		return nil, err
	}

	return c.withdrawalQueries.GetByID(ctx, entity.ID())
}

// ResolveWithdrawal moves a pending request to paid or rejected. Resolving
// an already-resolved request fails, the terminal states are immutable.
func (c *withdrawalCommandsImpl) ResolveWithdrawal(ctx context.Context, id uuid.UUID, req reqdto.ResolveWithdrawalRequest) (*queries.WithdrawalView, error) {
	decision, err := withdrawal.NewDecision(req.Decision)
	if err != nil {
		return nil, errs.Mark(err, ErrWithdrawalValidation)
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		entity, err := c.withdrawalRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, ErrWithdrawalNotFound)
			}
			return struct{}{}, err
		}

		if err := entity.Resolve(decision, c.clock.Now()); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidTransition)
		}

		if err := c.withdrawalRepo.Update(ctx, tx, entity); err != nil {
			return struct{}{}, err
		}

		payload, _ := json.Marshal(map[string]any{
			"withdrawal_id": entity.ID(),
			"coupon":        entity.Coupon(),
			"status":        entity.Status().String(),
		})
		return struct{}{}, c.notificationRepo.CreateJob(ctx, tx, "email", "withdrawal_resolved", payload, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return c.withdrawalQueries.GetByID(ctx, id)
}
