package services

import (
	"time"

	"glowdesk-backend/models"
)

// VIP flag thresholds, checked after every recorded visit.
const (
	vipVisitCount = 20
	vipSpending   = 5_000_000
)

// LoyaltyDecision is the outcome of the loyalty state machine for one
// incoming treatment.
type LoyaltyDecision struct {
	IsFreeVisit        bool
	LoyaltyVisitsAfter int
}

// ResolveLoyalty runs the loyalty transition for a customer about to receive
// a treatment. requestedFree is the caller's explicit wish, nil when the
// caller leaves the decision to the engine.
//
// At the threshold the visit is forced free and the counter resets; a caller
// insisting on a paid visit at that point gets ErrFreeVisitDue. Below the
// threshold the counter advances and the caller's flag is honored.
func ResolveLoyalty(loyaltyVisits int, requestedFree *bool) (LoyaltyDecision, error) {
	if loyaltyVisits >= models.LoyaltyThreshold {
		if requestedFree != nil && !*requestedFree {
			return LoyaltyDecision{}, ErrFreeVisitDue
		}
		return LoyaltyDecision{IsFreeVisit: true, LoyaltyVisitsAfter: 0}, nil
	}

	free := requestedFree != nil && *requestedFree
	return LoyaltyDecision{IsFreeVisit: free, LoyaltyVisitsAfter: loyaltyVisits + 1}, nil
}

// ApplyVisit mutates the customer record for one recorded treatment. Must be
// persisted in the same transaction as the treatment itself.
func ApplyVisit(customer *models.Customer, decision LoyaltyDecision, billedPrice int64, date time.Time) {
	customer.TotalVisits++
	customer.LoyaltyVisits = decision.LoyaltyVisitsAfter
	if !decision.IsFreeVisit {
		customer.TotalSpending += billedPrice
	}
	visit := date
	customer.LastVisit = &visit

	if customer.TotalVisits >= vipVisitCount || customer.TotalSpending >= vipSpending {
		customer.IsVIP = true
	}
}
