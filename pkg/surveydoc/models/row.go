// Package models defines data structures shared by the surveydoc stages.
package models

// Row represents a single data row of a spreadsheet.
type Row struct {
	// Index is the 0-based position of the row below the header rows.
	Index int `json:"index"`
	// Cells holds one value per table column. Empty string means an empty cell.
	Cells []string `json:"cells"`
}

// Field is a single key/value pair rendered into a row document.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// String returns the field as "Key: Value".
func (f Field) String() string {
	return f.Key + ": " + f.Value
}
