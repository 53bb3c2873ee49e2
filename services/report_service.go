package services

import (
	"errors"
	"fmt"
	"time"

	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Period identifiers accepted by GetReport.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ReportSummary aggregates the treatment store over one period. Revenue
// excludes free visits.
type ReportSummary struct {
	Period        string    `json:"period"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Revenue       int64     `json:"revenue"`
	Treatments    int       `json:"treatments"`
	Customers     int       `json:"customers"`
	TherapistFees int64     `json:"therapistFees"`
}

// PeriodRange resolves a period keyword and reference date to inclusive
// calendar boundaries. Weeks start on Monday; the end boundary is the last
// instant of the period's final day.
func PeriodRange(period string, ref time.Time) (time.Time, time.Time, error) {
	switch period {
	case PeriodDay:
		return utils.BeginningOfDay(ref), utils.EndOfDay(ref), nil
	case PeriodWeek:
		start := utils.BeginningOfWeek(ref)
		return start, utils.EndOfDay(start.AddDate(0, 0, 6)), nil
	case PeriodMonth:
		start := utils.BeginningOfMonth(ref)
		return start, utils.EndOfDay(start.AddDate(0, 1, -1)), nil
	case PeriodYear:
		start := utils.BeginningOfYear(ref)
		return start, utils.EndOfDay(time.Date(ref.Year(), 12, 31, 0, 0, 0, 0, ref.Location())), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report period %q", period)
	}
}

// GetReport aggregates treatments for the period containing ref. For monthly
// reports an existing MonthlySummary row takes precedence over recomputing
// from raw treatments.
func GetReport(db *gorm.DB, salonID uuid.UUID, period string, ref time.Time) (*ReportSummary, error) {
	start, end, err := PeriodRange(period, ref)
	if err != nil {
		return nil, err
	}

	summary := ReportSummary{Period: period, Start: start, End: end}

	if period == PeriodMonth {
		var stored models.MonthlySummary
		err := db.Where("salon_id = ? AND year = ? AND month = ?",
			salonID, ref.Year(), int(ref.Month())).
			First(&stored).Error
		if err == nil {
			summary.Revenue = stored.Revenue
			summary.Treatments = stored.Treatments
			summary.Customers = stored.Customers
			summary.TherapistFees = stored.TherapistFees
			return &summary, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ? AND is_free_visit = false",
			salonID, start, end).
		Select("COALESCE(SUM(service_price), 0)").
		Scan(&summary.Revenue).Error; err != nil {
		return nil, err
	}

	var treatmentCount int64
	if err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ?", salonID, start, end).
		Count(&treatmentCount).Error; err != nil {
		return nil, err
	}
	summary.Treatments = int(treatmentCount)

	var customerCount int64
	if err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ? AND customer_id IS NOT NULL",
			salonID, start, end).
		Distinct("customer_id").
		Count(&customerCount).Error; err != nil {
		return nil, err
	}
	summary.Customers = int(customerCount)

	summary.TherapistFees, err = TherapistFeeForRange(db, salonID, start, end)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetMonthlySummary returns the stored summary for month/year, rebuilding it
// from the ledger and treatment store when missing or stale.
func GetMonthlySummary(db *gorm.DB, salonID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	return RebuildMonthlySummary(db, salonID, month, year)
}

// RebuildMonthlySummary recomputes and upserts the derived monthly aggregate.
// Ledger figures win for money; treatment counts come from the store.
func RebuildMonthlySummary(db *gorm.DB, salonID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := utils.EndOfDay(monthStart.AddDate(0, 1, -1))

	entries, err := GetEntries(db, salonID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	var summary models.MonthlySummary
	err = db.Where("salon_id = ? AND year = ? AND month = ?", salonID, year, month).
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		summary = models.MonthlySummary{
			ID:      uuid.New(),
			SalonID: salonID,
			Year:    year,
			Month:   month,
		}
	} else if err != nil {
		return nil, err
	}

	summary.Revenue = 0
	summary.TotalExpense = 0
	summary.NetIncome = 0
	summary.RunningTotal = 0
	for _, e := range entries {
		summary.Revenue += e.DailyRevenue
		summary.TotalExpense += e.TotalExpense
		summary.NetIncome += e.NetIncome
		summary.RunningTotal = e.RunningTotal // entries are date-ascending
	}

	var treatmentCount int64
	if err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ?", salonID, monthStart, monthEnd).
		Count(&treatmentCount).Error; err != nil {
		return nil, err
	}
	summary.Treatments = int(treatmentCount)

	var customerCount int64
	if err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ? AND customer_id IS NOT NULL",
			salonID, monthStart, monthEnd).
		Distinct("customer_id").
		Count(&customerCount).Error; err != nil {
		return nil, err
	}
	summary.Customers = int(customerCount)

	summary.TherapistFees, err = TherapistFeeForRange(db, salonID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	if err := db.Save(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}
