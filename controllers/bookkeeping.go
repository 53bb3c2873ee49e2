// controllers/bookkeeping.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpsertEntryInput defines the expected JSON structure for one day's books.
// Totals are not accepted: the ledger derives them.
type UpsertEntryInput struct {
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	DailyRevenue    int64  `json:"dailyRevenue" binding:"min=0"`
	OperationalCost int64  `json:"operationalCost" binding:"min=0"`
	SalaryExpense   int64  `json:"salaryExpense" binding:"min=0"`
	TherapistFee    int64  `json:"therapistFee" binding:"min=0"`
	OtherExpenses   int64  `json:"otherExpenses" binding:"min=0"`
	Notes           string `json:"notes"`
}

// AutoEntryInput is UpsertEntryInput minus the derived figures
type AutoEntryInput struct {
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	OperationalCost int64  `json:"operationalCost" binding:"min=0"`
	SalaryExpense   int64  `json:"salaryExpense" binding:"min=0"`
	OtherExpenses   int64  `json:"otherExpenses" binding:"min=0"`
	Notes           string `json:"notes"`
}

// UpsertDailyEntry creates or replaces the bookkeeping entry for a date and
// cascades running totals over later days.
func UpsertDailyEntry(c *gin.Context) {
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

	var input UpsertEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := services.UpsertDailyEntry(config.DB, salonUUID, services.DailyEntryInput{
		Date:            date,
		DailyRevenue:    input.DailyRevenue,
		OperationalCost: input.OperationalCost,
		SalaryExpense:   input.SalaryExpense,
		TherapistFee:    input.TherapistFee,
		OtherExpenses:   input.OtherExpenses,
		Notes:           input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save bookkeeping entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// AutoCalculateDailyEntry derives revenue and therapist fees from the day's
// treatments before upserting.
func AutoCalculateDailyEntry(c *gin.Context) {
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

	var input AutoEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := services.AutoCalculateDailyEntry(config.DB, salonUUID, services.AutoEntryInput{
		Date:            date,
		OperationalCost: input.OperationalCost,
		SalaryExpense:   input.SalaryExpense,
		OtherExpenses:   input.OtherExpenses,
		Notes:           input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrTherapistNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to calculate bookkeeping entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetEntries lists bookkeeping entries for a date range, defaulting to the
// current month
func GetEntries(c *gin.Context) {
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

	entries, err := services.GetEntries(config.DB, salonUUID, start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntryByDate retrieves the entry for one calendar day
func GetEntryByDate(c *gin.Context) {
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

	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := services.GetEntryByDate(config.DB, salonUUID, date)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bookkeeping entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ExportMonthlyLedger streams the month's entries as an .xlsx workbook
func ExportMonthlyLedger(c *gin.Context) {
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

	file, err := services.ExportMonthlyLedger(config.DB, salonUUID, month, year)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}
	defer func() { _ = file.Close() }()

	filename := fmt.Sprintf("bookkeeping-%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write export")
		return
	}
}
