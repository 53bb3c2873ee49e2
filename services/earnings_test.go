package services

import (
	"testing"

	"glowdesk-backend/models"

	"github.com/stretchr/testify/require"
)

func TestCalculateEarningsEmptyInput(t *testing.T) {
	therapist := models.Therapist{BaseFeePerTreatment: 20_000, CommissionRate: 0.12}

	got := CalculateEarnings(therapist, nil)

	require.Equal(t, EarningsBreakdown{}, got)
}

func TestCalculateEarningsWithFreeVisit(t *testing.T) {
	therapist := models.Therapist{BaseFeePerTreatment: 20_000, CommissionRate: 0.12}
	treatments := []models.Treatment{
		{ServicePrice: 200_000, TipAmount: 25_000},
		{ServicePrice: 0, TipAmount: 0, IsFreeVisit: true},
	}

	got := CalculateEarnings(therapist, treatments)

	require.Equal(t, int64(40_000), got.BaseFee, "base fee is charged for free visits too")
	require.Equal(t, int64(24_000), got.Commission, "free visit must contribute no commission")
	require.Equal(t, int64(25_000), got.Tips)
	require.Equal(t, int64(89_000), got.Total)
	require.Equal(t, 2, got.TreatmentCount)
}

func TestCalculateEarningsTotalIdentity(t *testing.T) {
	therapist := models.Therapist{BaseFeePerTreatment: 15_000, CommissionRate: 0.1}
	treatments := []models.Treatment{
		{ServicePrice: 120_000, TipAmount: 5_000},
		{ServicePrice: 85_000, TipAmount: 0},
		{ServicePrice: 0, TipAmount: 10_000, IsFreeVisit: true},
		{ServicePrice: 99_999, TipAmount: 1},
	}

	got := CalculateEarnings(therapist, treatments)

	require.Equal(t, got.BaseFee+got.Commission+got.Tips, got.Total)
	require.Equal(t, len(treatments), got.TreatmentCount)
}

func TestCalculateEarningsTipsSurviveFreeVisits(t *testing.T) {
	therapist := models.Therapist{BaseFeePerTreatment: 0, CommissionRate: 0.5}
	treatments := []models.Treatment{
		{ServicePrice: 0, TipAmount: 30_000, IsFreeVisit: true},
	}

	got := CalculateEarnings(therapist, treatments)

	require.Equal(t, int64(0), got.Commission)
	require.Equal(t, int64(30_000), got.Tips)
	require.Equal(t, int64(30_000), got.Total)
}

func TestCommissionRoundsPerRecord(t *testing.T) {
	// 3 x 33,333 at 10% rounds each record to 3,333, not the period sum
	therapist := models.Therapist{CommissionRate: 0.1}
	treatments := []models.Treatment{
		{ServicePrice: 33_333},
		{ServicePrice: 33_333},
		{ServicePrice: 33_333},
	}

	got := CalculateEarnings(therapist, treatments)

	require.Equal(t, int64(9_999), got.Commission)
}

func TestLaborCostExcludesTips(t *testing.T) {
	b := EarningsBreakdown{BaseFee: 40_000, Commission: 24_000, Tips: 25_000, Total: 89_000}

	require.Equal(t, int64(64_000), b.LaborCost())
}
