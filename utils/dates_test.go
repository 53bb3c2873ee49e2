package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBeginningOfWeekSunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2025, 1, 26, 18, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), BeginningOfWeek(sunday))
}

func TestBeginningOfWeekMonday(t *testing.T) {
	monday := time.Date(2025, 1, 20, 8, 15, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), BeginningOfWeek(monday))
}

func TestEndOfDay(t *testing.T) {
	d := EndOfDay(time.Date(2025, 1, 26, 3, 0, 0, 0, time.UTC))
	require.Equal(t, 23, d.Hour())
	require.Equal(t, 59, d.Minute())
	require.Equal(t, 59, d.Second())
	require.True(t, d.Before(time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 1, 25, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 27, 1, 0, 0, 0, time.UTC)
	require.Equal(t, 2, DaysBetween(start, end))
	require.Equal(t, 0, DaysBetween(start, start))
}
