package commands

import (
	"context"

	"affiliate-ledger/internal/domain/affiliate"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/errs"
	"affiliate-ledger/internal/pkg/patch"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAffiliateNotFound   = errs.New("affiliate not found")
	ErrDuplicateCoupon     = errs.New("coupon already registered")
	ErrAffiliateValidation = errs.New("affiliate validation failed")
)

type AffiliateCommands interface {
	CreateAffiliate(ctx context.Context, req reqdto.CreateAffiliateRequest) (*queries.AffiliateView, error)
	UpdateAffiliate(ctx context.Context, id uuid.UUID, req reqdto.UpdateAffiliateRequest) (*queries.AffiliateView, error)
	DeleteAffiliate(ctx context.Context, id uuid.UUID) error
}

type affiliateCommandsImpl struct {
	repo             AffiliateRepository
	affiliateQueries queries.AffiliateQueries
	pool             *pgxpool.Pool
}

func NewAffiliateCommands(repo AffiliateRepository, affiliateQueries queries.AffiliateQueries, pool *pgxpool.Pool) AffiliateCommands {
	return &affiliateCommandsImpl{
		repo:             repo,
		affiliateQueries: affiliateQueries,
		pool:             pool,
	}
}

func (c *affiliateCommandsImpl) CreateAffiliate(ctx context.Context, req reqdto.CreateAffiliateRequest) (*queries.AffiliateView, error) {
	entity, err := affiliate.NewAffiliate(req.Name, req.Coupon, req.Contact, req.PayoutKey)
	if err != nil {
		return nil, errs.Mark(err, ErrAffiliateValidation)
	}

	if err := c.repo.Create(ctx, c.pool, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCoupon)
		}
		return nil, err
	}

	return c.affiliateQueries.GetByID(ctx, entity.ID())
}

func (c *affiliateCommandsImpl) UpdateAffiliate(ctx context.Context, id uuid.UUID, req reqdto.UpdateAffiliateRequest) (*queries.AffiliateView, error) {
	snapshot, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAffiliateNotFound)
		}
		return nil, err
	}

	entity := affiliate.ReconstructAffiliate(
		snapshot.ID,
		snapshot.Name,
		affiliate.Coupon(snapshot.Coupon),
		snapshot.Contact,
		snapshot.PayoutKey,
		snapshot.CreatedAt,
		snapshot.UpdatedAt,
	)

	if err := entity.Rename(patch.Coalesce(req.Name, snapshot.Name)); err != nil {
		return nil, errs.Mark(err, ErrAffiliateValidation)
	}
	if req.Contact != nil {
		entity.ChangeContact(req.Contact)
	}
	if req.PayoutKey != nil {
		entity.ChangePayoutKey(req.PayoutKey)
	}

	if err := c.repo.Update(ctx, c.pool, entity); err != nil {
		return nil, err
	}

	return c.affiliateQueries.GetByID(ctx, id)
}

// DeleteAffiliate is a hard delete. Sales and withdrawals keep their coupon
// strings as historical records, dangling coupons are tolerated everywhere.
func (c *affiliateCommandsImpl) DeleteAffiliate(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAffiliateNotFound)
		}
		return err
	}
	return nil
}
