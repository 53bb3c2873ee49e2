package services

import (
	"testing"
	"time"

	"glowdesk-backend/models"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRecomputeRunningTotalsPrefixSums(t *testing.T) {
	entries := []models.BookkeepingEntry{
		{EntryDate: day(2026, 1, 25), NetIncome: 155_000},
		{EntryDate: day(2026, 1, 26), NetIncome: 270_000},
		{EntryDate: day(2026, 1, 27), NetIncome: 220_000},
		{EntryDate: day(2026, 1, 28), NetIncome: -50_000},
	}

	RecomputeRunningTotals(0, entries)

	var sum int64
	for _, e := range entries {
		sum += e.NetIncome
		require.Equal(t, sum, e.RunningTotal, "entry %s", e.EntryDate.Format("2006-01-02"))
	}
}

func TestRecomputeRunningTotalsIsIdempotent(t *testing.T) {
	entries := []models.BookkeepingEntry{
		{NetIncome: 100_000},
		{NetIncome: -20_000},
		{NetIncome: 35_000},
	}

	RecomputeRunningTotals(10_000, entries)
	first := make([]int64, len(entries))
	for i, e := range entries {
		first[i] = e.RunningTotal
	}

	RecomputeRunningTotals(10_000, entries)
	for i, e := range entries {
		require.Equal(t, first[i], e.RunningTotal)
	}
}

func TestRecomputeRunningTotalsEmpty(t *testing.T) {
	RecomputeRunningTotals(42, nil) // must not panic
}

// Backfilling Jan 26 between existing Jan 25 and Jan 27 entries: Jan 25 keeps
// its running total, Jan 26 builds on it, Jan 27 is rebuilt on Jan 26.
func TestBackfillCascadeScenario(t *testing.T) {
	jan25 := models.BookkeepingEntry{EntryDate: day(2026, 1, 25), NetIncome: 155_000, RunningTotal: 155_000}
	jan27 := models.BookkeepingEntry{EntryDate: day(2026, 1, 27), NetIncome: 220_000, RunningTotal: 375_000}

	// Upsert of Jan 26: predecessor is Jan 25.
	jan26 := models.BookkeepingEntry{EntryDate: day(2026, 1, 26), NetIncome: 270_000}
	jan26.RunningTotal = jan25.RunningTotal + jan26.NetIncome

	// Cascade over the tail.
	tail := []models.BookkeepingEntry{jan27}
	RecomputeRunningTotals(jan26.RunningTotal, tail)

	require.Equal(t, int64(155_000), jan25.RunningTotal)
	require.Equal(t, int64(425_000), jan26.RunningTotal)
	require.Equal(t, int64(645_000), tail[0].RunningTotal)
}

// Derived fields are always recomputed from the individual figures, never
// trusted from input.
func TestDailyEntryDerivedFields(t *testing.T) {
	input := DailyEntryInput{
		DailyRevenue:    500_000,
		OperationalCost: 100_000,
		SalaryExpense:   150_000,
		TherapistFee:    64_000,
		OtherExpenses:   6_000,
	}

	totalExpense, netIncome := deriveTotals(input)

	require.Equal(t, int64(320_000), totalExpense)
	require.Equal(t, int64(180_000), netIncome)
}
