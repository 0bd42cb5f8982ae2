package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := map[string]struct {
		in   string
		want time.Time
		ok   bool
	}{
		"plain date":   {"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		"rfc3339":      {"2024-03-05T10:30:00Z", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), true},
		"no zone":      {"2024-03-05T10:30:00", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), true},
		"padded":       {"  2024-03-05 ", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		"empty":        {"", time.Time{}, false},
		"garbage":      {"next week", time.Time{}, false},
		"day overflow": {"2024-02-31", time.Time{}, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseDate(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.want.Equal(got), "got %s", got)
			}
		})
	}
}
