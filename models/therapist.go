package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Therapist struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Phone string

	// Fee configuration. Earnings for any period are recomputable from the
	// treatment history; the totals below are display caches only.
	BaseFeePerTreatment int64   `gorm:"default:0"`                   // smallest currency units, per treatment
	CommissionRate      float64 `gorm:"type:decimal(5,4);default:0"` // fraction of service price, 0..1

	TotalTreatments int   `gorm:"default:0"`
	TotalEarnings   int64 `gorm:"default:0"`

	IsActive bool `gorm:"default:true"`

	Treatments []Treatment `gorm:"foreignKey:TherapistID"`

	gorm.Model
}

func (t *Therapist) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
