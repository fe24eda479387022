// Package spreadsheet handles the tabular side of import/export: reading the
// first sheet of an .xlsx upload into header-keyed rows, and writing
// collection exports and the monthly report workbook.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by its column header, exactly as written
// in the file (matching against header alias tables happens in the import
// resolver).
type Row map[string]string

var ErrEmptySheet = errors.New("la hoja no contiene filas")

// ReadRows parses the first sheet of an .xlsx stream. Row 1 is the header;
// every following row becomes a Row. Cells beyond the header width are
// ignored; missing trailing cells are simply absent from the map.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	headers := rows[0]
	out := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(cells) {
				continue
			}
			if cells[i] != "" {
				empty = false
			}
			row[h] = cells[i]
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
