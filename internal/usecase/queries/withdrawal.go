package queries

import (
	"context"

	"github.com/google/uuid"
)

type WithdrawalListFilter struct {
	Status *string
}

type WithdrawalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WithdrawalView, error)
	List(ctx context.Context, filter WithdrawalListFilter) ([]*WithdrawalView, error)
	ListByCoupon(ctx context.Context, coupon string) ([]*WithdrawalView, error)
}

type WithdrawalViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WithdrawalView, error)
	List(ctx context.Context, filter WithdrawalListFilter) ([]*WithdrawalView, error)
	FindByCoupon(ctx context.Context, coupon string) ([]*WithdrawalView, error)
}

type withdrawalQueriesImpl struct {
	repo WithdrawalViewRepo
}

func NewWithdrawalQueries(repo WithdrawalViewRepo) WithdrawalQueries {
	return &withdrawalQueriesImpl{repo: repo}
}

func (q *withdrawalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WithdrawalView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *withdrawalQueriesImpl) List(ctx context.Context, filter WithdrawalListFilter) ([]*WithdrawalView, error) {
	return q.repo.List(ctx, filter)
}

func (q *withdrawalQueriesImpl) ListByCoupon(ctx context.Context, coupon string) ([]*WithdrawalView, error) {
	return q.repo.FindByCoupon(ctx, coupon)
}
