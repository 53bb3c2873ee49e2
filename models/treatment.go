package models

import (
	"time"

	"github.com/google/uuid"
)

// Treatment is one completed service event. Rows are append-only: loyalty and
// ledger figures are derived from them, so corrections are made with
// compensating bookkeeping entries instead of edits.
type Treatment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ReceiptNumber string    `gorm:"uniqueIndex;not null"`
	TreatmentDate time.Time `gorm:"index;not null"`

	CustomerID  *uuid.UUID `gorm:"type:uuid;index"` // nil for anonymous walk-ins
	ServiceID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceName string     `gorm:"not null"`
	TherapistID uuid.UUID  `gorm:"type:uuid;index;not null"`

	// ServicePrice is zero on free visits; the catalog price stays on the
	// Service row.
	ServicePrice int64 `gorm:"not null"`
	TipAmount    int64 `gorm:"default:0"`
	IsFreeVisit  bool  `gorm:"default:false"`

	Notes string

	CreatedAt time.Time
}
