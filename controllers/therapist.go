// controllers/therapist.go
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

// CreateTherapistInput defines the expected JSON structure for creating a therapist
type CreateTherapistInput struct {
	Name                string  `json:"name" binding:"required"`
	Phone               string  `json:"phone"`
	BaseFeePerTreatment int64   `json:"baseFeePerTreatment" binding:"min=0"`
	CommissionRate      float64 `json:"commissionRate" binding:"min=0,max=1"`
}

// UpdateTherapistInput defines the expected JSON structure for updating a therapist
type UpdateTherapistInput struct {
	Name                *string  `json:"name"`
	Phone               *string  `json:"phone"`
	BaseFeePerTreatment *int64   `json:"baseFeePerTreatment" binding:"omitempty,min=0"`
	CommissionRate      *float64 `json:"commissionRate" binding:"omitempty,min=0,max=1"`
	IsActive            *bool    `json:"isActive"`
}

// CreateTherapist creates a new therapist for the salon
func CreateTherapist(c *gin.Context) {
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

	var input CreateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	therapist := models.Therapist{
		ID:                  uuid.New(),
		SalonID:             salonUUID,
		Name:                input.Name,
		Phone:               input.Phone,
		BaseFeePerTreatment: input.BaseFeePerTreatment,
		CommissionRate:      input.CommissionRate,
		IsActive:            true,
	}

	if err := config.DB.Create(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create therapist")
		return
	}

	c.JSON(http.StatusCreated, therapist)
}

// GetTherapists retrieves all therapists for the salon
func GetTherapists(c *gin.Context) {
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

	var therapists []models.Therapist
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&therapists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve therapists")
		return
	}

	c.JSON(http.StatusOK, therapists)
}

// UpdateTherapist updates a therapist's profile and fee configuration
func UpdateTherapist(c *gin.Context) {
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

	therapistID := c.Param("id")
	therapistUUID, err := uuid.Parse(therapistID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
		return
	}

	var input UpdateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var therapist models.Therapist
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, therapistUUID).
		First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		therapist.Name = *input.Name
	}
	if input.Phone != nil {
		therapist.Phone = *input.Phone
	}
	if input.BaseFeePerTreatment != nil {
		therapist.BaseFeePerTreatment = *input.BaseFeePerTreatment
	}
	if input.CommissionRate != nil {
		therapist.CommissionRate = *input.CommissionRate
	}
	if input.IsActive != nil {
		therapist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update therapist")
		return
	}

	c.JSON(http.StatusOK, therapist)
}

// DeleteTherapist soft deletes a therapist
func DeleteTherapist(c *gin.Context) {
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

	therapistID := c.Param("id")
	therapistUUID, err := uuid.Parse(therapistID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, therapistUUID).
		Delete(&models.Therapist{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete therapist")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Therapist deleted successfully"})
}

// GetTherapistEarnings runs the earnings calculator over a date range,
// defaulting to the current month.
func GetTherapistEarnings(c *gin.Context) {
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

	therapistID := c.Param("id")
	therapistUUID, err := uuid.Parse(therapistID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
		return
	}

	var therapist models.Therapist
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, therapistUUID).
		First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	start := utils.BeginningOfMonth(now)
	end := now
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

	treatments, err := services.TreatmentsForTherapist(config.DB, salonUUID, therapistUUID, start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve treatments")
		return
	}

	breakdown := services.CalculateEarnings(therapist, treatments)

	c.JSON(http.StatusOK, gin.H{
		"therapist": gin.H{
			"id":   therapist.ID,
			"name": therapist.Name,
		},
		"start":    utils.BeginningOfDay(start),
		"end":      utils.EndOfDay(end),
		"earnings": breakdown,
	})
}
