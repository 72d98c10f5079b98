//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestAffiliate(t *testing.T, db DBLike, name, coupon string) uuid.UUID {
	t.Helper()

	affiliateID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO affiliates (id, name, coupon) VALUES ($1, $2, $3) ON CONFLICT (coupon) DO NOTHING",
		affiliateID, name, coupon)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM affiliates WHERE coupon = $1", coupon).Scan(&affiliateID)
	}

	return affiliateID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, price decimal.Decimal, durationDays int) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO plans (id, name, price, duration_days) VALUES ($1, $2, $3, $4)",
		planID, name, price, durationDays)
	require.NoError(t, err)

	return planID
}

func CreateTestSale(t *testing.T, db DBLike, customerName string, coupon *string, commission decimal.Decimal, status string, expiresAt *time.Time) uuid.UUID {
	t.Helper()

	saleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO sales (id, customer_name, plan_name, price, coupon, commission, status, expires_at)
		 VALUES ($1, $2, 'Basic', 25.00, $3, $4, $5, $6)`,
		saleID, customerName, coupon, commission, status, expiresAt)
	require.NoError(t, err)

	return saleID
}

func CreateTestWithdrawal(t *testing.T, db DBLike, coupon string, amount decimal.Decimal, status string) uuid.UUID {
	t.Helper()

	withdrawalID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO withdrawals (id, coupon, amount, payout_key, status) VALUES ($1, $2, $3, 'usdt:test-wallet', $4)",
		withdrawalID, coupon, amount, status)
	require.NoError(t, err)

	return withdrawalID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO plans (id, name, price, duration_days) VALUES
		    (gen_random_uuid(), 'Basic', 25.00, 30),
		    (gen_random_uuid(), 'Annual', 180.00, 365)
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
