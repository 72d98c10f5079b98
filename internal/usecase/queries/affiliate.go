package queries

import (
	"context"

	"github.com/google/uuid"
)

type AffiliateQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AffiliateView, error)
	GetByCoupon(ctx context.Context, coupon string) (*AffiliateView, error)
	List(ctx context.Context) ([]*AffiliateView, error)
}

type AffiliateViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AffiliateView, error)
	FindByCoupon(ctx context.Context, coupon string) (*AffiliateView, error)
	FindAll(ctx context.Context) ([]*AffiliateView, error)
}

type affiliateQueriesImpl struct {
	repo AffiliateViewRepo
}

func NewAffiliateQueries(repo AffiliateViewRepo) AffiliateQueries {
	return &affiliateQueriesImpl{repo: repo}
}

func (q *affiliateQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AffiliateView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *affiliateQueriesImpl) GetByCoupon(ctx context.Context, coupon string) (*AffiliateView, error) {
	return q.repo.FindByCoupon(ctx, coupon)
}

func (q *affiliateQueriesImpl) List(ctx context.Context) ([]*AffiliateView, error) {
	return q.repo.FindAll(ctx)
}
