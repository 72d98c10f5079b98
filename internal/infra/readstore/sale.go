package readstore

import (
	"context"
	"fmt"
	"strings"

	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/pgconv"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleReadStore struct {
	pool *pgxpool.Pool
}

func NewSaleReadStore(pool *pgxpool.Pool) *SaleReadStore {
	return &SaleReadStore{pool: pool}
}

const saleViewColumns = `id, customer_name, plan_name, price, coupon, commission, status, expires_at, created_at, updated_at`

func (r *SaleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SaleView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+saleViewColumns+` FROM sales WHERE id = $1`, id)

	v, err := scanSaleView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale by id", err)
	}
	return v, nil
}

func (r *SaleReadStore) List(ctx context.Context, filter queries.SaleListFilter) ([]*queries.SaleView, error) {
	query := `SELECT ` + saleViewColumns + ` FROM sales`
	var conds []string
	var args []any

	if filter.Coupon != nil {
		args = append(args, *filter.Coupon)
		conds = append(conds, fmt.Sprintf("coupon = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	defer rows.Close()

	return collectSaleViews(rows)
}

func (r *SaleReadStore) FindByCoupon(ctx context.Context, coupon string) ([]*queries.SaleView, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+saleViewColumns+` FROM sales WHERE coupon = $1 ORDER BY created_at DESC`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales by coupon", err)
	}
	defer rows.Close()

	return collectSaleViews(rows)
}

func scanSaleView(row pgx.Row) (*queries.SaleView, error) {
	var v queries.SaleView
	err := row.Scan(&v.ID, &v.CustomerName, &v.PlanName, &v.Price, &v.Coupon, &v.Commission, &v.Status, &v.ExpiresAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectSaleViews(rows pgx.Rows) ([]*queries.SaleView, error) {
	var views []*queries.SaleView
	for rows.Next() {
		v, err := scanSaleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sales", err)
	}
	return views, nil
}
