package queries

import (
	"context"

	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/pkg/clock"
	"affiliate-ledger/internal/pkg/config"

	"github.com/google/uuid"
)

type SaleListFilter struct {
	Coupon *string
	Status *string
}

type SaleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
	List(ctx context.Context, filter SaleListFilter) ([]*SaleView, error)
	ListByCoupon(ctx context.Context, coupon string) ([]*SaleView, error)
}

type SaleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
	List(ctx context.Context, filter SaleListFilter) ([]*SaleView, error)
	FindByCoupon(ctx context.Context, coupon string) ([]*SaleView, error)
}

type saleQueriesImpl struct {
	repo  SaleViewRepo
	clock clock.Clock
	cfg   config.LedgerConfig
}

func NewSaleQueries(repo SaleViewRepo, clk clock.Clock, cfg config.LedgerConfig) SaleQueries {
	return &saleQueriesImpl{repo: repo, clock: clk, cfg: cfg}
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SaleView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.classify(view)
	return view, nil
}

func (q *saleQueriesImpl) List(ctx context.Context, filter SaleListFilter) ([]*SaleView, error) {
	views, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.classify(v)
	}
	return views, nil
}

func (q *saleQueriesImpl) ListByCoupon(ctx context.Context, coupon string) ([]*SaleView, error) {
	views, err := q.repo.FindByCoupon(ctx, coupon)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.classify(v)
	}
	return views, nil
}

// classify stamps the expiration label at read time so it is always
// computed against the current clock, never stored.
func (q *saleQueriesImpl) classify(view *SaleView) {
	status := sale.ClassifyExpiration(view.ExpiresAt, q.clock.Now(), q.cfg.ExpiringSoonDays)
	view.Expiration = ExpirationView{
		Label:    string(status.Label),
		DaysLeft: status.DaysLeft,
		Severity: string(status.Severity),
	}
}
