package models

import (
	"time"

	"github.com/google/uuid"
)

// BookkeepingEntry is one calendar day of the salon's books. One row per
// (salon, date); TotalExpense, NetIncome and RunningTotal are always derived,
// never taken from input.
type BookkeepingEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_salon_entry_date,priority:1;not null"`

	EntryDate time.Time `gorm:"uniqueIndex:idx_salon_entry_date,priority:2;not null"` // midnight, local day

	DailyRevenue    int64 `gorm:"default:0"`
	OperationalCost int64 `gorm:"default:0"`
	SalaryExpense   int64 `gorm:"default:0"`
	TherapistFee    int64 `gorm:"default:0"`
	OtherExpenses   int64 `gorm:"default:0"`

	TotalExpense int64 `gorm:"default:0"`
	NetIncome    int64 `gorm:"default:0"`

	// Cumulative net income over all entries up to and including this date.
	// Recomputed for every later entry whenever a past day changes.
	RunningTotal int64 `gorm:"default:0"`

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlySummary is a derived aggregate over the ledger and treatment store,
// rebuilt on demand. When present, monthly reports read it instead of
// re-summing raw treatments.
type MonthlySummary struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_salon_month,priority:1;not null"`
	Year    int       `gorm:"uniqueIndex:idx_salon_month,priority:2;not null"`
	Month   int       `gorm:"uniqueIndex:idx_salon_month,priority:3;not null"` // 1..12

	Revenue       int64 `gorm:"default:0"`
	TotalExpense  int64 `gorm:"default:0"`
	NetIncome     int64 `gorm:"default:0"`
	RunningTotal  int64 `gorm:"default:0"` // as of the month's last ledger entry
	Treatments    int   `gorm:"default:0"`
	Customers     int   `gorm:"default:0"`
	TherapistFees int64 `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
