package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBirthdayWindowWithinMonth(t *testing.T) {
	from := time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)

	days := birthdayWindow(from, 7)

	require.Len(t, days, 8)
	require.Equal(t, "01-10", days[0])
	require.Equal(t, "01-17", days[7])
}

func TestBirthdayWindowCrossesMonthBoundary(t *testing.T) {
	// Jan 28 + 7 days runs into February; every day in between must appear.
	from := time.Date(2026, 1, 28, 9, 0, 0, 0, time.Local)

	days := birthdayWindow(from, 7)

	require.Equal(t,
		[]string{"01-28", "01-29", "01-30", "01-31", "02-01", "02-02", "02-03", "02-04"},
		days)
}

func TestBirthdayWindowCrossesYearBoundary(t *testing.T) {
	from := time.Date(2026, 12, 29, 9, 0, 0, 0, time.Local)

	days := birthdayWindow(from, 7)

	require.Contains(t, days, "12-31")
	require.Contains(t, days, "01-01")
	require.Contains(t, days, "01-05")
}
