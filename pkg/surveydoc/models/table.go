package models

// Table represents the first sheet of a spreadsheet with one logical header row.
type Table struct {
	// Columns contains the column names in sheet order. Names may repeat.
	Columns []string `json:"columns"`
	// Rows contains the data rows, each padded to len(Columns).
	Rows []Row `json:"rows"`
}

// ColumnIndex returns the index of the first column named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at column col of row, or "" when out of range.
func (t *Table) Value(row Row, col int) string {
	if col < 0 || col >= len(row.Cells) {
		return ""
	}
	return row.Cells[col]
}

// SetColumn sets the values of column name, appending the column when missing.
// values is indexed like t.Rows.
func (t *Table) SetColumn(name string, values []string) {
	col := t.ColumnIndex(name)
	if col < 0 {
		t.Columns = append(t.Columns, name)
		col = len(t.Columns) - 1
	}
	for i := range t.Rows {
		for len(t.Rows[i].Cells) <= col {
			t.Rows[i].Cells = append(t.Rows[i].Cells, "")
		}
		if i < len(values) {
			t.Rows[i].Cells[col] = values[i]
		} else {
			t.Rows[i].Cells[col] = ""
		}
	}
}
