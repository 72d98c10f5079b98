//go:build unit

package sale_test

import (
	"testing"
	"time"

	"affiliate-ledger/internal/domain/sale"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpiration(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	t.Run("no expiry date", func(t *testing.T) {
		status := sale.ClassifyExpiration(nil, now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationNoDate, status.Label)
		assert.Equal(t, sale.SeverityNeutral, status.Severity)
		assert.Equal(t, 0, status.DaysLeft)
	})

	t.Run("already expired", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(-24*time.Hour), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationExpired, status.Label)
		assert.Equal(t, sale.SeverityCritical, status.Severity)
	})

	t.Run("expired a second ago", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(-time.Second), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationExpired, status.Label)
	})

	t.Run("expiring soon", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(48*time.Hour), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationExpiringSoon, status.Label)
		assert.Equal(t, 2, status.DaysLeft)
		assert.Equal(t, sale.SeverityWarning, status.Severity)
	})

	t.Run("expires later today counts as expiring soon", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(2*time.Hour), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationExpiringSoon, status.Label)
		assert.Equal(t, 0, status.DaysLeft)
	})

	t.Run("boundary at the soon threshold", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(72*time.Hour), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationExpiringSoon, status.Label)
		assert.Equal(t, 3, status.DaysLeft)
	})

	t.Run("comfortably active", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(10*24*time.Hour), now, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationActive, status.Label)
		assert.Equal(t, 10, status.DaysLeft)
		assert.Equal(t, sale.SeverityNormal, status.Severity)
	})

	t.Run("calendar days flip at UTC midnight", func(t *testing.T) {
		// 23:30 today to 00:30 in five days: under 4.05 * 24h on the wall
		// clock but 5 calendar days apart.
		lateNow := time.Date(2026, 1, 15, 23, 30, 0, 0, time.UTC)
		expiry := time.Date(2026, 1, 20, 0, 30, 0, 0, time.UTC)

		status := sale.ClassifyExpiration(&expiry, lateNow, sale.DefaultExpiringSoonDays)

		assert.Equal(t, sale.ExpirationActive, status.Label)
		assert.Equal(t, 5, status.DaysLeft)
	})

	t.Run("custom soon window", func(t *testing.T) {
		status := sale.ClassifyExpiration(at(6*24*time.Hour), now, 7)

		assert.Equal(t, sale.ExpirationExpiringSoon, status.Label)
		assert.Equal(t, 6, status.DaysLeft)
	})
}
