package services

import (
	"fmt"
	"time"

	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ledgerExportHeader = []string{
	"Date", "Revenue", "Operational", "Salaries", "Therapist fees",
	"Other", "Total expense", "Net income", "Running total", "Notes",
}

// ExportMonthlyLedger renders one month of bookkeeping entries as an .xlsx
// workbook with a totals row.
func ExportMonthlyLedger(db *gorm.DB, salonID uuid.UUID, month, year int) (*excelize.File, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := utils.EndOfDay(monthStart.AddDate(0, 1, -1))

	entries, err := GetEntries(db, salonID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for col, title := range ledgerExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	var totalRevenue, totalExpense, totalNet int64
	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.EntryDate.Format("2006-01-02"),
			e.DailyRevenue,
			e.OperationalCost,
			e.SalaryExpense,
			e.TherapistFee,
			e.OtherExpenses,
			e.TotalExpense,
			e.NetIncome,
			e.RunningTotal,
			e.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalRevenue += e.DailyRevenue
		totalExpense += e.TotalExpense
		totalNet += e.NetIncome
	}

	totalsRow := len(entries) + 2
	totals := map[int]interface{}{
		1: fmt.Sprintf("Total %04d-%02d", year, month),
		2: totalRevenue,
		7: totalExpense,
		8: totalNet,
	}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col, totalsRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	return f, nil
}
