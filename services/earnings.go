package services

import (
	"math"

	"glowdesk-backend/models"
)

// EarningsBreakdown decomposes a therapist's pay for a set of treatments.
// All amounts are smallest currency units.
type EarningsBreakdown struct {
	BaseFee        int64 `json:"baseFee"`
	Commission     int64 `json:"commission"`
	Tips           int64 `json:"tips"`
	Total          int64 `json:"total"`
	TreatmentCount int   `json:"treatmentCount"`
}

// CalculateEarnings computes a therapist's pay from their fee configuration
// and treatment history. The base fee is a per-treatment labor cost and is
// charged for free visits too; commission follows the recorded service price,
// which is zero on free visits; tips always belong to the therapist.
func CalculateEarnings(therapist models.Therapist, treatments []models.Treatment) EarningsBreakdown {
	var breakdown EarningsBreakdown

	for _, t := range treatments {
		breakdown.Commission += commissionFor(t.ServicePrice, therapist.CommissionRate)
		breakdown.Tips += t.TipAmount
	}

	breakdown.TreatmentCount = len(treatments)
	breakdown.BaseFee = therapist.BaseFeePerTreatment * int64(len(treatments))
	breakdown.Total = breakdown.BaseFee + breakdown.Commission + breakdown.Tips
	return breakdown
}

// commissionFor rounds per record so that per-treatment payouts sum to the
// period total exactly.
func commissionFor(price int64, rate float64) int64 {
	return int64(math.Round(float64(price) * rate))
}

// LaborCost is the business-cost part of a breakdown: base fee plus
// commission. Tips are customer money passing through, not an expense.
func (b EarningsBreakdown) LaborCost() int64 {
	return b.BaseFee + b.Commission
}
