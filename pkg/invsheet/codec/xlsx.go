// Package codec encodes and decodes the minimal spreadsheet convention
// used for inventory backups: one sheet, an ordered sequence of rows,
// first row is the header.
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Encode writes rows into a single-sheet xlsx document and returns its
// bytes. Row and cell order is preserved exactly. widths, when non-empty,
// sets per-column width hints; extra entries beyond the widest row are
// applied as given.
func Encode(rows [][]any, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads an xlsx document and returns the rows of its first sheet
// as strings, in sheet order. Trailing empty cells may be absent from a
// row, so callers must bounds-check column access.
func Decode(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return rows, nil
}
