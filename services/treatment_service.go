package services

import (
	"errors"
	"strings"
	"time"

	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRef identifies the customer receiving a treatment: by ID for known
// customers, by phone for walk-ins. A walk-in phone that is not on file gets
// a customer record created before the loyalty transition runs.
type CustomerRef struct {
	ID    *uuid.UUID
	Phone string
	Name  string
}

type RecordTreatmentInput struct {
	Date            time.Time
	Customer        *CustomerRef // nil for anonymous walk-ins
	ServiceID       uuid.UUID
	TherapistID     uuid.UUID
	Price           *int64 // nil uses the catalog price
	Tip             int64
	IsFreeVisit     *bool // nil leaves the decision to the loyalty engine
	Notes           string
	CreatedByUserID uuid.UUID
}

type RecordTreatmentResult struct {
	Treatment models.Treatment `json:"treatment"`
	Customer  *models.Customer `json:"customer,omitempty"`
}

// RecordTreatment persists one completed treatment, running the loyalty
// transition and the therapist/customer stat updates in the same transaction.
// If the customer cannot be resolved nothing is written.
func RecordTreatment(db *gorm.DB, salonID uuid.UUID, input RecordTreatmentInput) (*RecordTreatmentResult, error) {
	var result RecordTreatmentResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.Where("salon_id = ? AND id = ?", salonID, input.ServiceID).
			First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}

		var therapist models.Therapist
		if err := tx.Where("salon_id = ? AND id = ?", salonID, input.TherapistID).
			First(&therapist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTherapistNotFound
			}
			return err
		}

		customer, err := resolveCustomer(tx, salonID, input.Customer, input.CreatedByUserID)
		if err != nil {
			return err
		}

		decision := LoyaltyDecision{IsFreeVisit: input.IsFreeVisit != nil && *input.IsFreeVisit}
		if customer != nil {
			decision, err = ResolveLoyalty(customer.LoyaltyVisits, input.IsFreeVisit)
			if err != nil {
				return err
			}
		}

		price := service.Price
		if input.Price != nil {
			price = *input.Price
		}
		if decision.IsFreeVisit {
			// Free visits are billed at zero; the catalog price stays on
			// the service row.
			price = 0
		}

		treatment := models.Treatment{
			ID:              uuid.New(),
			SalonID:         salonID,
			CreatedByUserID: input.CreatedByUserID,
			ReceiptNumber:   "TRX-" + input.Date.Format("20060102") + "-" + utils.GenerateRandomString(6),
			TreatmentDate:   input.Date,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			TherapistID:     therapist.ID,
			ServicePrice:    price,
			TipAmount:       input.Tip,
			IsFreeVisit:     decision.IsFreeVisit,
			Notes:           input.Notes,
		}
		if customer != nil {
			treatment.CustomerID = &customer.ID
		}

		if err := tx.Create(&treatment).Error; err != nil {
			return err
		}

		if customer != nil {
			ApplyVisit(customer, decision, price, input.Date)
			if err := tx.Save(customer).Error; err != nil {
				return err
			}
		}

		// Display caches; the authoritative figures stay recomputable from
		// the treatment history.
		earned := therapist.BaseFeePerTreatment + commissionFor(price, therapist.CommissionRate) + input.Tip
		if err := tx.Model(&models.Therapist{}).Where("id = ?", therapist.ID).
			Updates(map[string]interface{}{
				"total_treatments": gorm.Expr("total_treatments + ?", 1),
				"total_earnings":   gorm.Expr("total_earnings + ?", earned),
			}).Error; err != nil {
			return err
		}

		result = RecordTreatmentResult{Treatment: treatment, Customer: customer}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func resolveCustomer(tx *gorm.DB, salonID uuid.UUID, ref *CustomerRef, createdBy uuid.UUID) (*models.Customer, error) {
	if ref == nil {
		return nil, nil
	}

	var customer models.Customer
	if ref.ID != nil {
		err := tx.Where("salon_id = ? AND id = ?", salonID, *ref.ID).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		if err != nil {
			return nil, err
		}
		return &customer, nil
	}

	phone := strings.TrimSpace(ref.Phone)
	if phone == "" {
		return nil, ErrCustomerRequired
	}

	err := tx.Where("salon_id = ? AND phone = ?", salonID, phone).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(ref.Name)
	if name == "" {
		name = "Walk-in " + phone
	}
	customer = models.Customer{
		ID:              uuid.New(),
		SalonID:         salonID,
		CreatedByUserID: createdBy,
		Name:            name,
		Phone:           phone,
		IsActive:        true,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetTreatments lists treatments in [start, end] newest first.
func GetTreatments(db *gorm.DB, salonID uuid.UUID, start, end time.Time) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := db.Where("salon_id = ? AND treatment_date BETWEEN ? AND ?",
		salonID, utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Order("treatment_date DESC").
		Find(&treatments).Error
	return treatments, err
}

// TreatmentsForTherapist lists one therapist's treatments in [start, end].
func TreatmentsForTherapist(db *gorm.DB, salonID, therapistID uuid.UUID, start, end time.Time) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := db.Where("salon_id = ? AND therapist_id = ? AND treatment_date BETWEEN ? AND ?",
		salonID, therapistID, utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Order("treatment_date ASC").
		Find(&treatments).Error
	return treatments, err
}
