package repository

import (
	"context"
	"time"

	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/withdrawal"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type WithdrawalRepository struct {
	pool *pgxpool.Pool
}

func NewWithdrawalRepository(pool *pgxpool.Pool) *WithdrawalRepository {
	return &WithdrawalRepository{pool: pool}
}

func (r *WithdrawalRepository) Create(ctx context.Context, tx db.DBTX, w *withdrawal.Withdrawal) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO withdrawals (id, coupon, amount, payout_key, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID(), w.Coupon(), w.Amount(), w.PayoutKey(), w.Status().String(), w.RequestedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create withdrawal", err)
	}
	return nil
}

func (r *WithdrawalRepository) Update(ctx context.Context, tx db.DBTX, w *withdrawal.Withdrawal) error {
	tag, err := tx.Exec(ctx, `
		UPDATE withdrawals
		SET status = $2, resolved_at = $3, updated_at = now()
		WHERE id = $1`,
		w.ID(), w.Status().String(), w.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update withdrawal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("withdrawal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WithdrawalRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*withdrawal.Withdrawal, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, coupon, amount, payout_key, status, requested_at, resolved_at, created_at, updated_at
		FROM withdrawals
		WHERE id = $1
		FOR UPDATE`, id)

	var (
		withdrawalID uuid.UUID
		coupon       string
		amount       decimal.Decimal
		payoutKey    string
		status       string
		requestedAt  time.Time
		resolvedAt   *time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&withdrawalID, &coupon, &amount, &payoutKey, &status, &requestedAt, &resolvedAt, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find withdrawal", err)
	}

	withdrawalStatus, err := withdrawal.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid withdrawal status in storage", err)
	}

	return withdrawal.ReconstructWithdrawal(withdrawalID, coupon, amount, payoutKey, withdrawalStatus, requestedAt, resolvedAt, createdAt, updatedAt), nil
}

func (r *WithdrawalRepository) ListRecordsByCoupon(ctx context.Context, tx db.DBTX, coupon string) ([]ledger.WithdrawalRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT coupon, status, amount
		FROM withdrawals
		WHERE coupon = $1`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list withdrawal records", err)
	}
	defer rows.Close()

	return scanWithdrawalRecords(rows)
}

func scanWithdrawalRecords(rows pgx.Rows) ([]ledger.WithdrawalRecord, error) {
	var records []ledger.WithdrawalRecord
	for rows.Next() {
		var (
			coupon string
			status string
			amount decimal.Decimal
		)
		if err := rows.Scan(&coupon, &status, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan withdrawal record", err)
		}
		records = append(records, ledger.WithdrawalRecord{
			Coupon: coupon,
			Status: withdrawal.Status(status),
			Amount: amount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read withdrawal records", err)
	}
	return records, nil
}
