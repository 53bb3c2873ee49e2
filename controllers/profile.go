package controllers

import (
	"net/http"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	SalonName    string `json:"salonName"`
	SalonAddress string `json:"salonAddress"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salonName":             user.SalonName,
		"salonAddress":          user.SalonAddress,
		"phone":                 user.Phone,
		"email":                 user.Email,
		"workingHours":          user.WorkingHours,
		"birthdayReminders":     user.BirthdayReminders,
		"loyaltyReminders":      user.LoyaltyReminders,
		"whatsAppNotifications": user.WhatsAppNotifications,
		"smsNotifications":      user.SMSNotifications,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user.SalonName = input.SalonName
	user.SalonAddress = input.SalonAddress
	user.Phone = input.Phone
	user.Email = input.Email

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateWorkingHours(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input struct {
		WorkingHours models.JSONB `json:"workingHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("working_hours", input.WorkingHours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input struct {
		BirthdayReminders     bool `json:"birthdayReminders"`
		LoyaltyReminders      bool `json:"loyaltyReminders"`
		WhatsAppNotifications bool `json:"whatsAppNotifications"`
		SMSNotifications      bool `json:"smsNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"birthday_reminders":      input.BirthdayReminders,
			"loyalty_reminders":       input.LoyaltyReminders,
			"whats_app_notifications": input.WhatsAppNotifications,
			"sms_notifications":       input.SMSNotifications,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
