package services

import (
	"testing"
	"time"

	"glowdesk-backend/models"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveLoyaltyIncrementsBelowThreshold(t *testing.T) {
	for visits := 0; visits < models.LoyaltyThreshold; visits++ {
		decision, err := ResolveLoyalty(visits, nil)
		require.NoError(t, err)
		require.False(t, decision.IsFreeVisit)
		require.Equal(t, visits+1, decision.LoyaltyVisitsAfter)
	}
}

func TestResolveLoyaltyForcesFreeAtThreshold(t *testing.T) {
	decision, err := ResolveLoyalty(models.LoyaltyThreshold, nil)
	require.NoError(t, err)
	require.True(t, decision.IsFreeVisit)
	require.Equal(t, 0, decision.LoyaltyVisitsAfter)
}

func TestResolveLoyaltyRejectsForcedPaidVisit(t *testing.T) {
	_, err := ResolveLoyalty(models.LoyaltyThreshold, boolPtr(false))
	require.ErrorIs(t, err, ErrFreeVisitDue)
}

func TestResolveLoyaltyHonorsCallerFreeBelowThreshold(t *testing.T) {
	decision, err := ResolveLoyalty(1, boolPtr(true))
	require.NoError(t, err)
	require.True(t, decision.IsFreeVisit)
	require.Equal(t, 2, decision.LoyaltyVisitsAfter, "a courtesy free visit still advances the counter")
}

// Every 4th visit is free: 1-3 paid, 4 free, 5-7 paid, 8 free.
func TestLoyaltyCycleRepeats(t *testing.T) {
	customer := models.Customer{}
	date := time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)

	for visit := 1; visit <= 8; visit++ {
		decision, err := ResolveLoyalty(customer.LoyaltyVisits, nil)
		require.NoError(t, err)

		wantFree := visit%4 == 0
		require.Equal(t, wantFree, decision.IsFreeVisit, "visit %d", visit)

		price := int64(150_000)
		if decision.IsFreeVisit {
			price = 0
		}
		ApplyVisit(&customer, decision, price, date.AddDate(0, 0, visit))
	}

	require.Equal(t, 8, customer.TotalVisits)
	require.Equal(t, int64(6*150_000), customer.TotalSpending, "free visits add no spending")
	require.Equal(t, 0, customer.LoyaltyVisits)
}

func TestApplyVisitFreeTreatment(t *testing.T) {
	customer := models.Customer{
		TotalVisits:   3,
		TotalSpending: 450_000,
		LoyaltyVisits: models.LoyaltyThreshold,
	}
	date := time.Date(2026, 2, 14, 15, 30, 0, 0, time.Local)

	decision, err := ResolveLoyalty(customer.LoyaltyVisits, nil)
	require.NoError(t, err)
	require.True(t, decision.IsFreeVisit)

	ApplyVisit(&customer, decision, 0, date)

	require.Equal(t, 4, customer.TotalVisits)
	require.Equal(t, int64(450_000), customer.TotalSpending)
	require.Equal(t, 0, customer.LoyaltyVisits)
	require.NotNil(t, customer.LastVisit)
	require.True(t, customer.LastVisit.Equal(date))
}

func TestApplyVisitFlagsVIPBySpending(t *testing.T) {
	customer := models.Customer{TotalSpending: 4_900_000, LoyaltyVisits: 1}

	decision, err := ResolveLoyalty(customer.LoyaltyVisits, nil)
	require.NoError(t, err)

	ApplyVisit(&customer, decision, 150_000, time.Now())

	require.True(t, customer.IsVIP)
}
