package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one tab of an export workbook: fixed human-readable headers plus
// pre-stringified rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// BuildWorkbook assembles the sheets into one workbook. The first sheet
// replaces excelize's default "Sheet1"; empty sheets are skipped, matching
// the original export behavior.
func BuildWorkbook(sheets ...Sheet) (*excelize.File, error) {
	f := excelize.NewFile()
	wrote := false

	for _, s := range sheets {
		if len(s.Rows) == 0 {
			continue
		}
		if !wrote {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(s.Name); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, s); err != nil {
			return nil, err
		}
		wrote = true
	}

	if !wrote {
		// keep a single empty default sheet rather than an invalid workbook
		return f, nil
	}
	return f, nil
}

func writeSheet(f *excelize.File, s Sheet) error {
	for col, h := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Name, cell, h); err != nil {
			return err
		}
	}
	for rowIdx, row := range s.Rows {
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.Name, cell, val); err != nil {
				return fmt.Errorf("hoja %s: %w", s.Name, err)
			}
		}
	}
	return nil
}
