package readstore

import (
	"context"

	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/pgconv"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AffiliateReadStore struct {
	pool *pgxpool.Pool
}

func NewAffiliateReadStore(pool *pgxpool.Pool) *AffiliateReadStore {
	return &AffiliateReadStore{pool: pool}
}

const affiliateViewColumns = `id, name, coupon, contact, payout_key, created_at, updated_at`

func (r *AffiliateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AffiliateView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+affiliateViewColumns+` FROM affiliates WHERE id = $1`, id)

	var v queries.AffiliateView
	if err := row.Scan(&v.ID, &v.Name, &v.Coupon, &v.Contact, &v.PayoutKey, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("affiliate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find affiliate by id", err)
	}
	return &v, nil
}

func (r *AffiliateReadStore) FindByCoupon(ctx context.Context, coupon string) (*queries.AffiliateView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+affiliateViewColumns+` FROM affiliates WHERE coupon = $1`, coupon)

	var v queries.AffiliateView
	if err := row.Scan(&v.ID, &v.Name, &v.Coupon, &v.Contact, &v.PayoutKey, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("affiliate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find affiliate by coupon", err)
	}
	return &v, nil
}

func (r *AffiliateReadStore) FindAll(ctx context.Context) ([]*queries.AffiliateView, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+affiliateViewColumns+` FROM affiliates ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list affiliates", err)
	}
	defer rows.Close()

	var views []*queries.AffiliateView
	for rows.Next() {
		var v queries.AffiliateView
		if err := rows.Scan(&v.ID, &v.Name, &v.Coupon, &v.Contact, &v.PayoutKey, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan affiliate", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read affiliates", err)
	}
	return views, nil
}
