// controllers/treatment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreatmentCustomerInput identifies the customer: by id for known customers,
// by phone (plus optional name) for walk-ins.
type TreatmentCustomerInput struct {
	ID    *uuid.UUID `json:"id"`
	Phone string     `json:"phone"`
	Name  string     `json:"name"`
}

// RecordTreatmentInput defines the expected JSON structure for logging a treatment
type RecordTreatmentInput struct {
	Date        *time.Time              `json:"date"`
	Customer    *TreatmentCustomerInput `json:"customer"`
	ServiceID   uuid.UUID               `json:"serviceId" binding:"required"`
	TherapistID uuid.UUID               `json:"therapistId" binding:"required"`
	Price       *int64                  `json:"price" binding:"omitempty,min=0"`
	Tip         int64                   `json:"tip" binding:"min=0"`
	IsFreeVisit *bool                   `json:"isFreeVisit"`
	Notes       string                  `json:"notes"`
}

// RecordTreatment logs a completed treatment, running the loyalty transition
// before persisting.
func RecordTreatment(c *gin.Context) {
	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return
	}

	var input RecordTreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Customer != nil && input.Customer.ID == nil {
		if input.Customer.Phone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer requires an id or a phone number")
			return
		}
		if !utils.ValidatePhone(input.Customer.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	serviceInput := services.RecordTreatmentInput{
		Date:            date,
		ServiceID:       input.ServiceID,
		TherapistID:     input.TherapistID,
		Price:           input.Price,
		Tip:             input.Tip,
		IsFreeVisit:     input.IsFreeVisit,
		Notes:           input.Notes,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
	}
	if input.Customer != nil {
		serviceInput.Customer = &services.CustomerRef{
			ID:    input.Customer.ID,
			Phone: input.Customer.Phone,
			Name:  input.Customer.Name,
		}
	}

	result, err := services.RecordTreatment(config.DB, salonUUID, serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound),
			errors.Is(err, services.ErrTherapistNotFound),
			errors.Is(err, services.ErrCustomerNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrFreeVisitDue):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrCustomerRequired):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record treatment")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetTreatments lists treatments for a date range, defaulting to today
func GetTreatments(c *gin.Context) {
	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return
	}

	now := time.Now()
	start, end := now, now
	if s := c.Query("start"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.ParseInLocation("2006-01-02", e, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = parsed
	}

	treatments, err := services.GetTreatments(config.DB, salonUUID, start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve treatments")
		return
	}

	c.JSON(http.StatusOK, treatments)
}

// GetTreatment retrieves a specific treatment by ID
func GetTreatment(c *gin.Context) {
	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return
	}

	treatmentID := c.Param("id")
	treatmentUUID, err := uuid.Parse(treatmentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid treatment ID format")
		return
	}

	var treatment models.Treatment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, treatmentUUID).
		First(&treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Treatment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, treatment)
}
