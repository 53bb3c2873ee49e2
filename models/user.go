package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	Role string `gorm:"type:varchar(20);not null"` // 'owner' or 'employee'

	// A user account owns exactly one salon; the salon scope carried in JWT
	// claims is the owner's user ID.
	SalonName    string `gorm:"not null"`
	SalonAddress string
	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'"`

	BirthdayReminders     bool `gorm:"default:true"`
	LoyaltyReminders      bool `gorm:"default:true"`
	WhatsAppNotifications bool `gorm:"default:false"`
	SMSNotifications      bool `gorm:"default:false"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for working hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
