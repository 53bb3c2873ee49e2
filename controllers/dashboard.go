package controllers

import (
	"fmt"
	"net/http"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecentTreatment struct {
	Customer  string `json:"customer"`
	Service   string `json:"service"`
	Therapist string `json:"therapist"`
	Price     int64  `json:"price"`
	Free      bool   `json:"free"`
	VisitDate string `json:"visitDate"` // e.g. "Today", "Yesterday"
}

type LoyaltyCustomer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LoyaltyVisits int    `json:"loyaltyVisits"`
}

// GetDashboardOverview composes the admin landing page figures
func GetDashboardOverview(c *gin.Context) {
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

	// Total Customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("salon_id = ? AND deleted_at IS NULL", salonUUID).
		Count(&totalCustomers)

	// Today's billable revenue
	todayRevenue, err := services.DailyRevenue(config.DB, salonUUID, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute today's revenue")
		return
	}

	// This month's billable revenue
	firstOfMonth := utils.BeginningOfMonth(now)
	var monthlyRevenue int64
	config.DB.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date >= ? AND is_free_visit = false", salonUUID, firstOfMonth).
		Select("COALESCE(SUM(service_price), 0)").Scan(&monthlyRevenue)

	// Cumulative net income as of the latest ledger entry
	var runningTotal int64
	var latestEntry models.BookkeepingEntry
	if err := config.DB.Where("salon_id = ?", salonUUID).
		Order("entry_date DESC").
		First(&latestEntry).Error; err == nil {
		runningTotal = latestEntry.RunningTotal
	}

	// Recent Treatments (last 5)
	var recentTreatments []RecentTreatment
	var treatments []models.Treatment
	config.DB.Where("salon_id = ?", salonUUID).
		Order("treatment_date DESC").
		Limit(5).
		Find(&treatments)
	for _, t := range treatments {
		customerName := "Walk-in"
		if t.CustomerID != nil {
			var customer models.Customer
			if err := config.DB.First(&customer, "id = ?", *t.CustomerID).Error; err == nil {
				customerName = customer.Name
			}
		}
		therapistName := ""
		var therapist models.Therapist
		if err := config.DB.First(&therapist, "id = ?", t.TherapistID).Error; err == nil {
			therapistName = therapist.Name
		}

		daysAgo := utils.DaysBetween(t.TreatmentDate, now)
		var visitDate string
		switch daysAgo {
		case 0:
			visitDate = "Today"
		case 1:
			visitDate = "Yesterday"
		default:
			visitDate = fmt.Sprintf("%d days ago", daysAgo)
		}

		recentTreatments = append(recentTreatments, RecentTreatment{
			Customer:  customerName,
			Service:   t.ServiceName,
			Therapist: therapistName,
			Price:     t.ServicePrice,
			Free:      t.IsFreeVisit,
			VisitDate: visitDate,
		})
	}

	// Customers whose next visit will be free
	var loyaltyCustomers []LoyaltyCustomer
	config.DB.Model(&models.Customer{}).
		Select("name, phone, loyalty_visits").
		Where("salon_id = ? AND deleted_at IS NULL AND loyalty_visits >= ?",
			salonUUID, models.LoyaltyThreshold).
		Order("last_visit DESC").
		Limit(7).
		Scan(&loyaltyCustomers)

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":   totalCustomers,
		"todayRevenue":     todayRevenue,
		"monthlyRevenue":   monthlyRevenue,
		"runningTotal":     runningTotal,
		"recentTreatments": recentTreatments,
		"freeVisitsDue":    loyaltyCustomers,
	})
}
