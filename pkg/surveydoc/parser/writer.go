package parser

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"github.com/xuri/excelize/v2"
)

// WriteTable writes t to a new single-sheet xlsx file at path with one header
// row. Numeric cell text is stored as numbers, empty cells are left unset.
func WriteTable(path string, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		for colIdx, value := range row.Cells {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellName, parseValue(value)); err != nil {
				return err
			}
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
