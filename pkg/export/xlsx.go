// Package export renders schedule views as spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chapeltools/rota-admin/pkg/db"
)

const scheduleSheet = "Schedule"

// ScheduleWorkbook builds an xlsx workbook with one row per assignment.
// Ids without a matching name render as the raw id so the export never
// fails on a stale lookup.
func ScheduleWorkbook(assignments []db.ServiceAssignment, memberNames, serviceTypeNames map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"Date", "Service", "Member", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, a := range assignments {
		memberName := memberNames[a.MemberID]
		if memberName == "" {
			memberName = a.MemberID
		}
		serviceName := serviceTypeNames[a.ServiceTypeID]
		if serviceName == "" {
			serviceName = a.ServiceTypeID
		}

		values := []string{a.ServiceDate, serviceName, memberName, a.Status}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
			}
		}
	}

	return f, nil
}

// WriteScheduleFile builds the workbook and saves it to path
func WriteScheduleFile(path string, assignments []db.ServiceAssignment, memberNames, serviceTypeNames map[string]string) error {
	f, err := ScheduleWorkbook(assignments, memberNames, serviceTypeNames)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
