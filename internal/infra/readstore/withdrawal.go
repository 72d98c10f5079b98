package readstore

import (
	"context"

	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/pgconv"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WithdrawalReadStore struct {
	pool *pgxpool.Pool
}

func NewWithdrawalReadStore(pool *pgxpool.Pool) *WithdrawalReadStore {
	return &WithdrawalReadStore{pool: pool}
}

const withdrawalViewColumns = `id, coupon, amount, payout_key, status, requested_at, resolved_at, created_at, updated_at`

func (r *WithdrawalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WithdrawalView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+withdrawalViewColumns+` FROM withdrawals WHERE id = $1`, id)

	v, err := scanWithdrawalView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("withdrawal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find withdrawal by id", err)
	}
	return v, nil
}

func (r *WithdrawalReadStore) List(ctx context.Context, filter queries.WithdrawalListFilter) ([]*queries.WithdrawalView, error) {
	query := `SELECT ` + withdrawalViewColumns + ` FROM withdrawals`
	var args []any
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY requested_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list withdrawals", err)
	}
	defer rows.Close()

	return collectWithdrawalViews(rows)
}

func (r *WithdrawalReadStore) FindByCoupon(ctx context.Context, coupon string) ([]*queries.WithdrawalView, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+withdrawalViewColumns+` FROM withdrawals WHERE coupon = $1 ORDER BY requested_at DESC`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list withdrawals by coupon", err)
	}
	defer rows.Close()

	return collectWithdrawalViews(rows)
}

func scanWithdrawalView(row pgx.Row) (*queries.WithdrawalView, error) {
	var v queries.WithdrawalView
	err := row.Scan(&v.ID, &v.Coupon, &v.Amount, &v.PayoutKey, &v.Status, &v.RequestedAt, &v.ResolvedAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectWithdrawalViews(rows pgx.Rows) ([]*queries.WithdrawalView, error) {
	var views []*queries.WithdrawalView
	for rows.Next() {
		v, err := scanWithdrawalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan withdrawal", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read withdrawals", err)
	}
	return views, nil
}
