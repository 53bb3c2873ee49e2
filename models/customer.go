package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoyaltyThreshold is the number of counted visits after which the next
// treatment is granted free of charge.
const LoyaltyThreshold = 3

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_salon_phone,priority:1"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string `gorm:"not null"`
	Phone    string `gorm:"not null;uniqueIndex:idx_salon_phone,priority:2"`
	Email    string
	Birthday *time.Time
	Notes    string

	// Loyalty state. These columns are owned by the loyalty engine and are
	// never written through the customer API.
	TotalVisits   int        `gorm:"default:0"`
	TotalSpending int64      `gorm:"default:0"` // smallest currency units, free visits excluded
	LoyaltyVisits int        `gorm:"default:0"` // 0..LoyaltyThreshold
	LastVisit     *time.Time
	IsVIP         bool `gorm:"default:false"`

	IsActive bool `gorm:"default:true"`

	Treatments []Treatment `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
