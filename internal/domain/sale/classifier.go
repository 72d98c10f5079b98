package sale

import "time"

type Severity string

const (
	SeverityNeutral  Severity = "neutral"
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type ExpirationLabel string

const (
	ExpirationNoDate       ExpirationLabel = "no_date"
	ExpirationActive       ExpirationLabel = "active"
	ExpirationExpiringSoon ExpirationLabel = "expiring_soon"
	ExpirationExpired      ExpirationLabel = "expired"
)

const DefaultExpiringSoonDays = 3

type ExpirationStatus struct {
	Label    ExpirationLabel
	DaysLeft int
	Severity Severity
}

// ClassifyExpiration labels an expiry instant relative to now. Total over
// all inputs: a missing date is its own label, not an error. Day counting
// uses UTC calendar days so the label flips at midnight, not at the exact
// expiry hour.
func ClassifyExpiration(expiresAt *time.Time, now time.Time, soonDays int) ExpirationStatus {
	if expiresAt == nil {
		return ExpirationStatus{Label: ExpirationNoDate, Severity: SeverityNeutral}
	}

	if expiresAt.Before(now) {
		return ExpirationStatus{Label: ExpirationExpired, Severity: SeverityCritical}
	}

	days := calendarDaysUntil(now, *expiresAt)
	if days <= soonDays {
		return ExpirationStatus{Label: ExpirationExpiringSoon, DaysLeft: days, Severity: SeverityWarning}
	}

	return ExpirationStatus{Label: ExpirationActive, DaysLeft: days, Severity: SeverityNormal}
}

func calendarDaysUntil(now, expiresAt time.Time) int {
	n := now.UTC()
	e := expiresAt.UTC()
	nd := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	ed := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(ed.Sub(nd) / (24 * time.Hour))
}
