package services

import "errors"

var (
	// ErrCustomerNotFound indicates the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("glowdesk: customer not found")
	// ErrServiceNotFound indicates the referenced catalog service does not exist.
	ErrServiceNotFound = errors.New("glowdesk: service not found")
	// ErrTherapistNotFound indicates the referenced therapist does not exist.
	ErrTherapistNotFound = errors.New("glowdesk: therapist not found")
	// ErrEntryNotFound indicates no ledger entry exists for the date.
	ErrEntryNotFound = errors.New("glowdesk: bookkeeping entry not found")
	// ErrFreeVisitDue indicates the caller requested a paid visit for a
	// customer whose loyalty counter mandates a free one.
	ErrFreeVisitDue = errors.New("glowdesk: customer's next visit must be free")
	// ErrCustomerRequired indicates customer info was supplied but could not
	// be resolved; the treatment is not recorded.
	ErrCustomerRequired = errors.New("glowdesk: treatment requires a resolved customer")
)
