package inventory

import (
	"time"

	"Food-Sustainability-Backend/domain"
)

const (
	day             = 24 * time.Hour
	expiringSoonFor = 3 * day
)

// DaysRemaining is fractional and negative once the date has passed.
func DaysRemaining(expiry, now time.Time) float64 {
	return float64(expiry.Sub(now).Milliseconds()) / float64(day.Milliseconds())
}

// IsExpiringSoon reports whether expiry falls within three days of now.
// Items already past their date count as expiring soon.
func IsExpiringSoon(expiry *time.Time, now time.Time) bool {
	if expiry == nil {
		return false
	}
	return expiry.Sub(now) <= expiringSoonFor
}

func Risk(expiry *time.Time, now time.Time) string {
	if expiry == nil {
		return domain.RiskUnknown
	}

	days := DaysRemaining(*expiry, now)
	switch {
	case days < 2:
		return domain.RiskHigh
	case days < 5:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// shelfLifeDays derives a catalog shelf life from an expiry date, never
// less than one day.
func shelfLifeDays(expiry *time.Time, now time.Time) int {
	if expiry == nil {
		return 1
	}
	diff := expiry.Sub(now)
	if diff <= 0 {
		return 1
	}
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}
