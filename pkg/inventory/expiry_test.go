package inventory

import (
	"testing"
	"time"

	"Food-Sustainability-Backend/domain"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestIsExpiringSoon(t *testing.T) {
	cases := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{"no expiry", nil, false},
		{"exactly three days", at(3 * day), true},
		{"just over three days", at(3*day + time.Millisecond), false},
		{"already expired", at(-2 * day), true},
		{"ten days out", at(10 * day), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsExpiringSoon(tc.expiry, base))
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	assert.InDelta(t, 1.5, DaysRemaining(base.Add(36*time.Hour), base), 1e-9)
	assert.InDelta(t, -1, DaysRemaining(base.Add(-day), base), 1e-9)
}

func TestRisk(t *testing.T) {
	assert.Equal(t, domain.RiskUnknown, Risk(nil, base))
	assert.Equal(t, domain.RiskHigh, Risk(at(-day), base))
	assert.Equal(t, domain.RiskHigh, Risk(at(47*time.Hour), base))
	assert.Equal(t, domain.RiskMedium, Risk(at(2*day), base))
	assert.Equal(t, domain.RiskMedium, Risk(at(4*day), base))
	assert.Equal(t, domain.RiskLow, Risk(at(5*day), base))
}

func TestShelfLifeDays(t *testing.T) {
	assert.Equal(t, 1, shelfLifeDays(nil, base))
	assert.Equal(t, 1, shelfLifeDays(at(-3*day), base))
	assert.Equal(t, 1, shelfLifeDays(at(time.Hour), base))
	assert.Equal(t, 10, shelfLifeDays(at(10*day), base))
	assert.Equal(t, 11, shelfLifeDays(at(10*day+time.Minute), base))
}
