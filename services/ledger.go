package services

import (
	"errors"
	"sync"
	"time"

	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ledgerMu serializes upsert+cascade. Two concurrent upserts could otherwise
// both read a stale predecessor running total and commit a broken chain.
var ledgerMu sync.Mutex

// DailyEntryInput carries one day's figures. Totals are never taken from the
// caller; TotalExpense, NetIncome and RunningTotal are always derived here.
type DailyEntryInput struct {
	Date            time.Time
	DailyRevenue    int64
	OperationalCost int64
	SalaryExpense   int64
	TherapistFee    int64
	OtherExpenses   int64
	Notes           string
}

// AutoEntryInput is DailyEntryInput minus the figures the ledger derives
// itself: revenue comes from the day's treatments, therapist fee from the
// earnings calculator.
type AutoEntryInput struct {
	Date            time.Time
	OperationalCost int64
	SalaryExpense   int64
	OtherExpenses   int64
	Notes           string
}

// deriveTotals rebuilds the derived figures from the individual ones. Caller
// supplied totals are never trusted.
func deriveTotals(input DailyEntryInput) (totalExpense, netIncome int64) {
	totalExpense = input.OperationalCost + input.SalaryExpense + input.TherapistFee + input.OtherExpenses
	netIncome = input.DailyRevenue - totalExpense
	return totalExpense, netIncome
}

// RecomputeRunningTotals walks date-ascending entries and rebuilds each
// running total from the predecessor's. Mutates the slice in place.
func RecomputeRunningTotals(previousTotal int64, entries []models.BookkeepingEntry) {
	for i := range entries {
		entries[i].RunningTotal = previousTotal + entries[i].NetIncome
		previousTotal = entries[i].RunningTotal
	}
}

// UpsertDailyEntry creates or replaces the entry for input.Date and then
// recomputes the running total of every later entry. The whole operation,
// cascade included, commits atomically or not at all.
func UpsertDailyEntry(db *gorm.DB, salonID uuid.UUID, input DailyEntryInput) (*models.BookkeepingEntry, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	day := utils.BeginningOfDay(input.Date)
	totalExpense, netIncome := deriveTotals(input)

	var entry models.BookkeepingEntry
	err := db.Transaction(func(tx *gorm.DB) error {
		previousTotal := int64(0)
		var previous models.BookkeepingEntry
		err := tx.Where("salon_id = ? AND entry_date < ?", salonID, day).
			Order("entry_date DESC").
			First(&previous).Error
		if err == nil {
			previousTotal = previous.RunningTotal
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = tx.Where("salon_id = ? AND entry_date = ?", salonID, day).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = models.BookkeepingEntry{
				ID:        uuid.New(),
				SalonID:   salonID,
				EntryDate: day,
			}
		} else if err != nil {
			return err
		}

		entry.DailyRevenue = input.DailyRevenue
		entry.OperationalCost = input.OperationalCost
		entry.SalaryExpense = input.SalaryExpense
		entry.TherapistFee = input.TherapistFee
		entry.OtherExpenses = input.OtherExpenses
		entry.TotalExpense = totalExpense
		entry.NetIncome = netIncome
		entry.RunningTotal = previousTotal + netIncome
		entry.Notes = input.Notes

		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		// Fetch the whole tail in one range query and write it back inside
		// this transaction, so a backfilled day never leaves later running
		// totals half-updated.
		var later []models.BookkeepingEntry
		if err := tx.Where("salon_id = ? AND entry_date > ?", salonID, day).
			Order("entry_date ASC").
			Find(&later).Error; err != nil {
			return err
		}

		RecomputeRunningTotals(entry.RunningTotal, later)
		for i := range later {
			if err := tx.Model(&models.BookkeepingEntry{}).
				Where("id = ?", later[i].ID).
				Update("running_total", later[i].RunningTotal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DailyRevenue sums the billable service prices for one local calendar day.
// Free visits contribute nothing.
func DailyRevenue(db *gorm.DB, salonID uuid.UUID, date time.Time) (int64, error) {
	dayStart := utils.BeginningOfDay(date)
	dayEnd := utils.EndOfDay(date)

	var total int64
	err := db.Model(&models.Treatment{}).
		Where("salon_id = ? AND treatment_date BETWEEN ? AND ? AND is_free_visit = false",
			salonID, dayStart, dayEnd).
		Select("COALESCE(SUM(service_price), 0)").
		Scan(&total).Error
	return total, err
}

// TherapistFeeForDay sums base fee plus commission over every therapist who
// worked that day. Tips are excluded: they are customer money, not a business
// cost.
func TherapistFeeForDay(db *gorm.DB, salonID uuid.UUID, date time.Time) (int64, error) {
	return TherapistFeeForRange(db, salonID, utils.BeginningOfDay(date), utils.EndOfDay(date))
}

// TherapistFeeForRange is TherapistFeeForDay over an arbitrary [start, end].
func TherapistFeeForRange(db *gorm.DB, salonID uuid.UUID, start, end time.Time) (int64, error) {
	var treatments []models.Treatment
	if err := db.Where("salon_id = ? AND treatment_date BETWEEN ? AND ?",
		salonID, start, end).
		Find(&treatments).Error; err != nil {
		return 0, err
	}

	byTherapist := make(map[uuid.UUID][]models.Treatment)
	for _, t := range treatments {
		byTherapist[t.TherapistID] = append(byTherapist[t.TherapistID], t)
	}

	var fee int64
	for therapistID, group := range byTherapist {
		var therapist models.Therapist
		if err := db.First(&therapist, "id = ?", therapistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrTherapistNotFound
			}
			return 0, err
		}
		fee += CalculateEarnings(therapist, group).LaborCost()
	}
	return fee, nil
}

// AutoCalculateDailyEntry derives the day's revenue and therapist fee from
// the treatment store and upserts the bookkeeping entry.
func AutoCalculateDailyEntry(db *gorm.DB, salonID uuid.UUID, input AutoEntryInput) (*models.BookkeepingEntry, error) {
	revenue, err := DailyRevenue(db, salonID, input.Date)
	if err != nil {
		return nil, err
	}

	therapistFee, err := TherapistFeeForDay(db, salonID, input.Date)
	if err != nil {
		return nil, err
	}

	return UpsertDailyEntry(db, salonID, DailyEntryInput{
		Date:            input.Date,
		DailyRevenue:    revenue,
		OperationalCost: input.OperationalCost,
		SalaryExpense:   input.SalaryExpense,
		TherapistFee:    therapistFee,
		OtherExpenses:   input.OtherExpenses,
		Notes:           input.Notes,
	})
}

// GetEntries returns ledger entries in [start, end] ordered by date.
func GetEntries(db *gorm.DB, salonID uuid.UUID, start, end time.Time) ([]models.BookkeepingEntry, error) {
	var entries []models.BookkeepingEntry
	err := db.Where("salon_id = ? AND entry_date BETWEEN ? AND ?",
		salonID, utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

// GetEntryByDate returns the single entry for one calendar day.
func GetEntryByDate(db *gorm.DB, salonID uuid.UUID, date time.Time) (*models.BookkeepingEntry, error) {
	var entry models.BookkeepingEntry
	err := db.Where("salon_id = ? AND entry_date = ?", salonID, utils.BeginningOfDay(date)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
