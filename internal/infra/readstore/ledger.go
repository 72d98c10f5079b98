package readstore

import (
	"context"

	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/domain/withdrawal"
	"affiliate-ledger/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerReadStore feeds the balance engine. It reads only the columns the
// engine folds over, not full views.
type LedgerReadStore struct {
	pool *pgxpool.Pool
}

func NewLedgerReadStore(pool *pgxpool.Pool) *LedgerReadStore {
	return &LedgerReadStore{pool: pool}
}

func (r *LedgerReadStore) SaleRecordsByCoupon(ctx context.Context, coupon string) ([]ledger.SaleRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT coupon, status, commission FROM sales WHERE coupon = $1`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read sale records", err)
	}
	defer rows.Close()
	return collectSaleRecords(rows)
}

func (r *LedgerReadStore) AllSaleRecords(ctx context.Context) ([]ledger.SaleRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT coupon, status, commission FROM sales WHERE coupon IS NOT NULL`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read sale records", err)
	}
	defer rows.Close()
	return collectSaleRecords(rows)
}

func (r *LedgerReadStore) WithdrawalRecordsByCoupon(ctx context.Context, coupon string) ([]ledger.WithdrawalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT coupon, status, amount FROM withdrawals WHERE coupon = $1`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read withdrawal records", err)
	}
	defer rows.Close()
	return collectWithdrawalRecords(rows)
}

func (r *LedgerReadStore) AllWithdrawalRecords(ctx context.Context) ([]ledger.WithdrawalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT coupon, status, amount FROM withdrawals`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read withdrawal records", err)
	}
	defer rows.Close()
	return collectWithdrawalRecords(rows)
}

func collectSaleRecords(rows pgx.Rows) ([]ledger.SaleRecord, error) {
	var records []ledger.SaleRecord
	for rows.Next() {
		var (
			coupon     *string
			status     string
			commission decimal.Decimal
		)
		if err := rows.Scan(&coupon, &status, &commission); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale record", err)
		}
		records = append(records, ledger.SaleRecord{
			Coupon:     coupon,
			Status:     sale.Status(status),
			Commission: commission,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale records", err)
	}
	return records, nil
}

func collectWithdrawalRecords(rows pgx.Rows) ([]ledger.WithdrawalRecord, error) {
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
