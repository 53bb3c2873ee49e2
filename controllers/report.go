// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetReport aggregates treatments for a period (day/week/month/year) around
// a reference date, defaulting to today.
func GetReport(c *gin.Context) {
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

	period := c.DefaultQuery("period", services.PeriodDay)

	ref := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	summary, err := services.GetReport(config.DB, salonUUID, period, ref)
	if err != nil {
		switch period {
		case services.PeriodDay, services.PeriodWeek, services.PeriodMonth, services.PeriodYear:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		default:
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown period, expected day, week, month or year")
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthlySummary returns the month's stored aggregate, rebuilding it from
// the ledger and treatment store.
func GetMonthlySummary(c *gin.Context) {
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
	month, year := int(now.Month()), now.Year()
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
			return
		}
		month = parsed
	}
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	summary, err := services.GetMonthlySummary(config.DB, salonUUID, month, year)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build monthly summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
