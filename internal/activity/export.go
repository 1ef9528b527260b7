package activity

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Type", "Movement", "Message", "Timestamp"}

// WriteCSV streams the entries as CSV with the dashboard's column order.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{string(e.Action), e.Movement, e.Message, e.Timestamp()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const xlsxSheet = "Activity Log"

// BuildXLSX renders the entries as a one-sheet workbook for the reports
// menu. The caller owns closing the file.
func BuildXLSX(entries []Entry) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{string(e.Action), e.Movement, e.Message, e.Timestamp()}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}
