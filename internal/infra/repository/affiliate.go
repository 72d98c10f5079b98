package repository

import (
	"context"

	"affiliate-ledger/internal/domain/affiliate"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"
	"affiliate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AffiliateRepository struct {
	pool *pgxpool.Pool
}

func NewAffiliateRepository(pool *pgxpool.Pool) *AffiliateRepository {
	return &AffiliateRepository{pool: pool}
}

func (r *AffiliateRepository) Create(ctx context.Context, tx db.DBTX, a *affiliate.Affiliate) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO affiliates (id, name, coupon, contact, payout_key)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID(), a.Name(), a.Coupon().String(), a.Contact(), a.PayoutKey(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create affiliate", err)
	}
	return nil
}

func (r *AffiliateRepository) Update(ctx context.Context, tx db.DBTX, a *affiliate.Affiliate) error {
	tag, err := tx.Exec(ctx, `
		UPDATE affiliates
		SET name = $2, contact = $3, payout_key = $4, updated_at = now()
		WHERE id = $1`,
		a.ID(), a.Name(), a.Contact(), a.PayoutKey(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update affiliate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("affiliate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AffiliateRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM affiliates WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete affiliate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("affiliate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.AffiliateSnapshot, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, coupon, contact, payout_key, created_at, updated_at
		FROM affiliates
		WHERE id = $1`, id))
}

func (r *AffiliateRepository) FindByCoupon(ctx context.Context, coupon string) (*shared.AffiliateSnapshot, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, coupon, contact, payout_key, created_at, updated_at
		FROM affiliates
		WHERE coupon = $1`, coupon))
}

// FindByCouponForUpdate locks the affiliate row for the rest of the
// transaction. Withdrawal requests lock here before recomputing the
// balance.
func (r *AffiliateRepository) FindByCouponForUpdate(ctx context.Context, tx db.DBTX, coupon string) (*shared.AffiliateSnapshot, error) {
	return r.scanOne(tx.QueryRow(ctx, `
		SELECT id, name, coupon, contact, payout_key, created_at, updated_at
		FROM affiliates
		WHERE coupon = $1
		FOR UPDATE`, coupon))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *AffiliateRepository) scanOne(row rowScanner) (*shared.AffiliateSnapshot, error) {
	var s shared.AffiliateSnapshot
	err := row.Scan(&s.ID, &s.Name, &s.Coupon, &s.Contact, &s.PayoutKey, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find affiliate", err)
	}
	return &s, nil
}
