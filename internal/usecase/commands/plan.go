package commands

import (
	"context"

	"affiliate-ledger/internal/domain/plan"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/errs"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlanNotFound   = errs.New("plan not found")
	ErrPlanValidation = errs.New("plan validation failed")
)

type PlanCommands interface {
	CreatePlan(ctx context.Context, req reqdto.CreatePlanRequest) (*queries.PlanView, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

type planCommandsImpl struct {
	repo        PlanRepository
	planQueries queries.PlanQueries
	pool        *pgxpool.Pool
}

func NewPlanCommands(repo PlanRepository, planQueries queries.PlanQueries, pool *pgxpool.Pool) PlanCommands {
	return &planCommandsImpl{
		repo:        repo,
		planQueries: planQueries,
		pool:        pool,
	}
}

func (c *planCommandsImpl) CreatePlan(ctx context.Context, req reqdto.CreatePlanRequest) (*queries.PlanView, error) {
	entity, err := plan.NewPlan(req.Name, req.Price, req.DurationDays, req.FixedCommission)
	if err != nil {
		return nil, errs.Mark(err, ErrPlanValidation)
	}

	if err := c.repo.Create(ctx, c.pool, entity); err != nil {
		return nil, err
	}

	return c.planQueries.GetByID(ctx, entity.ID())
}

func (c *planCommandsImpl) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPlanNotFound)
		}
		return err
	}
	return nil
}
