package readstore

import (
	"context"

	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/pgconv"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanReadStore struct {
	pool *pgxpool.Pool
}

func NewPlanReadStore(pool *pgxpool.Pool) *PlanReadStore {
	return &PlanReadStore{pool: pool}
}

const planViewColumns = `id, name, price, duration_days, fixed_commission, created_at`

func (r *PlanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlanView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+planViewColumns+` FROM plans WHERE id = $1`, id)

	var v queries.PlanView
	if err := row.Scan(&v.ID, &v.Name, &v.Price, &v.DurationDays, &v.FixedCommission, &v.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan by id", err)
	}
	return &v, nil
}

func (r *PlanReadStore) FindAll(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+planViewColumns+` FROM plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	var views []*queries.PlanView
	for rows.Next() {
		var v queries.PlanView
		if err := rows.Scan(&v.ID, &v.Name, &v.Price, &v.DurationDays, &v.FixedCommission, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plans", err)
	}
	return views, nil
}
