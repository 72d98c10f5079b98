package repository

import (
	"context"

	"affiliate-ledger/internal/domain/plan"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"
	"affiliate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepository struct {
	pool *pgxpool.Pool
}

func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

func (r *PlanRepository) Create(ctx context.Context, tx db.DBTX, p *plan.Plan) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO plans (id, name, price, duration_days, fixed_commission)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID(), p.Name(), p.Price(), p.DurationDays(), p.FixedCommission(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create plan", err)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	var s shared.PlanSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price, duration_days, fixed_commission, created_at
		FROM plans
		WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Price, &s.DurationDays, &s.FixedCommission, &s.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find plan", err)
	}
	return &s, nil
}
