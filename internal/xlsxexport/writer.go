// Package xlsxexport builds Excel workbooks from stored commission records.
package xlsxexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"commis/internal/csvexport"
	"commis/internal/domain"
)

const sheetName = "Commissions"

var columns = []string{
	"Carrier",
	"Agent",
	"Transaction Type",
	"Amount",
	"Period",
	"Source File",
	"Source Row",
	"Created At",
}

// Build renders records into a single-sheet workbook and returns the
// serialized file.
func Build(records []domain.CommissionRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	for col, label := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for i := range records {
		r := &records[i]
		values := []interface{}{
			string(r.Carrier),
			r.AgentName,
			string(r.TransactionType),
			r.Amount,
			r.Period,
			r.SourceFile,
			r.RowPosition,
			r.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf, nil
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	return fmt.Sprintf("%s_%s.xlsx", csvexport.SanitizeFilename(name), time.Now().Format("2006-01-02"))
}
