package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriodRangeDay(t *testing.T) {
	ref := time.Date(2025, 1, 26, 14, 30, 0, 0, time.UTC)

	start, end, err := PeriodRange(PeriodDay, ref)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 26, end.Day())
	require.Equal(t, 23, end.Hour())
	require.Equal(t, 59, end.Minute())
}

func TestPeriodRangeWeekStartsMonday(t *testing.T) {
	// 2025-01-26 is a Sunday; its week runs Mon Jan 20 through Sun Jan 26.
	ref := time.Date(2025, 1, 26, 10, 0, 0, 0, time.UTC)

	start, end, err := PeriodRange(PeriodWeek, ref)
	require.NoError(t, err)
	require.Equal(t, time.Monday, start.Weekday())
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 26, end.Day())
	require.Equal(t, time.January, end.Month())
}

func TestPeriodRangeWeekMidweek(t *testing.T) {
	// A Wednesday resolves to the same Monday as the surrounding week.
	ref := time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)

	start, _, err := PeriodRange(PeriodWeek, ref)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodRangeMonth(t *testing.T) {
	ref := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

	start, end, err := PeriodRange(PeriodMonth, ref)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 28, end.Day())
	require.Equal(t, time.February, end.Month())
}

func TestPeriodRangeYear(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	start, end, err := PeriodRange(PeriodYear, ref)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.December, end.Month())
	require.Equal(t, 31, end.Day())
}

func TestPeriodRangeUnknown(t *testing.T) {
	_, _, err := PeriodRange("quarter", time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "quarter")
}
