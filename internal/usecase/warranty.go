package usecase

import (
	"math"
	"time"

	"gestao_servicos/internal/domain/entities"
)

// DefaultExpiryWindowDays is the horizon of the "warranties expiring" alert.
const DefaultExpiryWindowDays = 30

// WarrantyExpiry returns the service date advanced by the warranty duration
// in calendar months. The day of month is clamped to the last day of the
// target month: Jan 31 + 1 month is Feb 28 (29 in leap years), never an
// overflow into March. Clamping is the pinned semantic; do not swap this for
// time.AddDate, which normalizes overflow forward.
func WarrantyExpiry(rec entities.ServiceRecord) time.Time {
	return addMonthsClamped(dateOnly(rec.ServiceDate), rec.WarrantyMonths)
}

// WarrantyDaysRemaining returns the whole days between today and the warranty
// expiry, rounding partial days up. Negative means the warranty has expired.
// Both inputs are normalized to calendar dates before subtracting.
func WarrantyDaysRemaining(rec entities.ServiceRecord, today time.Time) int {
	expiry := WarrantyExpiry(rec)
	diff := expiry.Sub(dateOnly(today)).Hours() / 24
	return int(math.Ceil(diff))
}

// ClassifyRisk buckets days-remaining into the warranty risk classes. Day 7
// is still critical and day 30 is still a warning; the boundaries are
// inclusive on the tighter side.
func ClassifyRisk(daysRemaining int) entities.RiskClass {
	switch {
	case daysRemaining < 0:
		return entities.RiskExpired
	case daysRemaining <= 7:
		return entities.RiskCritical
	case daysRemaining <= 30:
		return entities.RiskWarning
	default:
		return entities.RiskOk
	}
}

// ExpiringWithin filters records whose warranty expires between today and
// maxDays from now, inclusive on both ends. Already-expired records are not
// alerts. Input order is preserved.
func ExpiringWithin(records []entities.ServiceRecord, today time.Time, maxDays int) []entities.ServiceRecord {
	out := make([]entities.ServiceRecord, 0)
	for _, rec := range records {
		days := WarrantyDaysRemaining(rec, today)
		if days >= 0 && days <= maxDays {
			out = append(out, rec)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addMonthsClamped(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
