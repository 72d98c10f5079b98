package repository

import (
	"context"
	"time"

	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository enqueues jobs for the out-of-process notifier.
// Rows are written in the same transaction as the business change so a
// rollback never leaves a stray notification.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
