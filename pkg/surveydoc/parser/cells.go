// Package parser reads and writes survey export spreadsheets.
package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the first sheet of an xlsx file into a Table.
// headerRows selects the header layout: 1 for a single header row, 2 for a
// composite header built from two physical rows.
func ReadTable(path string, headerRows int) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return BuildTable(rows, headerRows)
}

// BuildTable converts raw sheet rows into a Table.
// Every data row is padded to the widest row in the sheet.
func BuildTable(rows [][]string, headerRows int) (*models.Table, error) {
	if headerRows != 1 && headerRows != 2 {
		return nil, fmt.Errorf("unsupported header row count %d (must be 1 or 2)", headerRows)
	}

	width := dataWidth(rows)
	header := make([][]string, headerRows)
	for i := range header {
		if i < len(rows) {
			header[i] = padRow(rows[i], width)
		} else {
			header[i] = make([]string, width)
		}
	}

	table := &models.Table{}
	if headerRows == 1 {
		table.Columns = header[0]
	} else {
		table.Columns = CompositeHeaders(header[0], header[1])
	}

	for rowIdx := headerRows; rowIdx < len(rows); rowIdx++ {
		table.Rows = append(table.Rows, models.Row{
			Index: rowIdx - headerRows,
			Cells: padRow(rows[rowIdx], width),
		})
	}

	return table, nil
}

// padRow copies row and extends it with empty cells up to width.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Only canonical spellings convert, so identifiers such as "007" stay text.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	// Return as string
	return s
}
