package repository

import (
	"context"
	"time"

	"affiliate-ledger/internal/domain/ledger"
	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

func (r *SaleRepository) Create(ctx context.Context, tx db.DBTX, s *sale.Sale) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO sales (id, customer_name, plan_name, price, coupon, commission, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.CustomerName(), s.PlanName(), s.Price(), s.Coupon(), s.Commission(), s.Status().String(), s.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create sale", err)
	}
	return nil
}

func (r *SaleRepository) Update(ctx context.Context, tx db.DBTX, s *sale.Sale) error {
	tag, err := tx.Exec(ctx, `
		UPDATE sales
		SET customer_name = $2, plan_name = $3, price = $4, coupon = $5,
		    commission = $6, status = $7, expires_at = $8, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.CustomerName(), s.PlanName(), s.Price(), s.Coupon(), s.Commission(), s.Status().String(), s.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SaleRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*sale.Sale, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, customer_name, plan_name, price, coupon, commission, status, expires_at, created_at, updated_at
		FROM sales
		WHERE id = $1
		FOR UPDATE`, id)

	var (
		saleID       uuid.UUID
		customerName string
		planName     string
		price        decimal.Decimal
		coupon       *string
		commission   decimal.Decimal
		status       string
		expiresAt    *time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&saleID, &customerName, &planName, &price, &coupon, &commission, &status, &expiresAt, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}

	saleStatus, err := sale.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid sale status in storage", err)
	}

	return sale.ReconstructSale(saleID, customerName, planName, price, coupon, commission, saleStatus, expiresAt, createdAt, updatedAt), nil
}

func (r *SaleRepository) ListRecordsByCoupon(ctx context.Context, tx db.DBTX, coupon string) ([]ledger.SaleRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT coupon, status, commission
		FROM sales
		WHERE coupon = $1`, coupon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale records", err)
	}
	defer rows.Close()

	return scanSaleRecords(rows)
}

func scanSaleRecords(rows pgx.Rows) ([]ledger.SaleRecord, error) {
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
